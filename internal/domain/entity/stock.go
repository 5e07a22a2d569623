package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockRecord is the authoritative on-hand quantity of one product at one
// store. Exactly one record exists per (product, store) pair; Quantity is
// never allowed to go negative. Quantity is only ever mutated through the
// repository's conditional-update primitives, never by field assignment.
type StockRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_store" json:"product_id"`
	StoreID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_store" json:"store_id"`
	Quantity     int            `gorm:"not null;default:0" json:"quantity"`
	MinimumStock int            `gorm:"not null;default:0" json:"minimum_stock"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Store   Store   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock record
func (r *StockRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockRecord model
func (StockRecord) TableName() string {
	return "stock_records"
}

// IsBelowMinimum reports whether the record sits at or below its reorder
// threshold. Advisory only; no operation is blocked by it.
func (r *StockRecord) IsBelowMinimum() bool {
	return r.Quantity <= r.MinimumStock
}

// StockMovement is an append-only audit entry recorded alongside every
// quantity change. Movements are never updated or deleted.
type StockMovement struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	StockRecordID uuid.UUID         `gorm:"type:uuid;not null;index" json:"stock_record_id"`
	Type          enum.MovementType `gorm:"size:20;not null" json:"type"`
	Quantity      int               `gorm:"not null" json:"quantity"` // positive = in, negative = out
	QuantityAfter int               `gorm:"not null" json:"quantity_after"`
	ReferenceID   *uuid.UUID        `gorm:"type:uuid" json:"reference_id,omitempty"` // sale or counterpart record
	PerformedBy   *uuid.UUID        `gorm:"type:uuid" json:"performed_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`

	// Relationships
	StockRecord StockRecord `gorm:"foreignKey:StockRecordID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
