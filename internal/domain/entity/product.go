package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a watch model in the catalog. Per-store availability
// lives in StockRecord; the product row carries only catalog data.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CollectionID *uuid.UUID     `gorm:"type:uuid;index" json:"collection_id,omitempty"`
	SupplierID   *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Slug         string         `gorm:"size:255;unique;not null" json:"slug"`
	Reference    string         `gorm:"size:100;unique;not null" json:"reference"`
	Brand        string         `gorm:"size:255;not null" json:"brand"`
	Movement     *string        `gorm:"size:100" json:"movement,omitempty"`
	CaseMaterial *string        `gorm:"size:100" json:"case_material,omitempty"`
	CaseDiameter *int           `json:"case_diameter,omitempty"`
	Price        int64          `gorm:"not null;default:0" json:"-"` // cents
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	Active       bool           `gorm:"default:true" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Collection *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Supplier   *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// MarshalJSON converts the price from cents to a decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}
