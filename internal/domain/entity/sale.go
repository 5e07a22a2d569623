package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is the header of a point-of-sale transaction. A sale always has at
// least one item, references exactly one cash session (which was OPEN when
// the sale posted) and optionally one customer. The header, its items and
// the stock decrement commit in a single transaction.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"store_id"`
	CashSessionID uuid.UUID          `gorm:"type:uuid;not null;index" json:"cash_session_id"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Reference     string             `gorm:"size:100;unique;not null" json:"reference"`
	SubTotal      int64              `gorm:"not null;default:0" json:"-"` // cents
	Discount      int64              `gorm:"not null;default:0" json:"-"` // cents
	Total         int64              `gorm:"not null;default:0" json:"-"` // cents
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	Status        enum.SaleStatus    `gorm:"size:20;not null;default:'COMPLETED'" json:"status"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Store       Store       `gorm:"foreignKey:StoreID" json:"-"`
	CashSession CashSession `gorm:"foreignKey:CashSessionID" json:"-"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items       []SaleItem  `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON converts the monetary fields from cents to decimals
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		SubTotal: float64(s.SubTotal) / 100,
		Discount: float64(s.Discount) / 100,
		Total:    float64(s.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. Subtotal = quantity×unit_price − discount.
type SaleItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"`           // cents
	Discount  int64          `gorm:"not null;default:0" json:"-"` // cents
	SubTotal  int64          `gorm:"not null" json:"-"`           // cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON converts the monetary fields from cents to decimals
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Discount  float64 `json:"discount"`
		SubTotal  float64 `json:"sub_total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Discount:  float64(i.Discount) / 100,
		SubTotal:  float64(i.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
