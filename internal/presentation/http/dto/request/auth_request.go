package request

import "github.com/google/uuid"

// RegisterRequest represents a staff account registration request
type RegisterRequest struct {
	FirstName string     `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string     `json:"last_name" binding:"omitempty,max=100"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Role      string     `json:"role" binding:"omitempty,oneof=admin manager staff"`
	StoreID   *uuid.UUID `json:"store_id"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
