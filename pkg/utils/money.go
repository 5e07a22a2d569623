package utils

import "math"

// ToCents converts a decimal amount to integer cents
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a decimal amount
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
