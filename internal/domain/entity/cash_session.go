package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CashRegister is a physical till at a store. Sessions are scoped to a
// register; at most one session per register may be OPEN at a time.
type CashRegister struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store    Store         `gorm:"foreignKey:StoreID" json:"-"`
	Sessions []CashSession `gorm:"foreignKey:CashRegisterID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cash register
func (r *CashRegister) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashRegister model
func (CashRegister) TableName() string {
	return "cash_registers"
}

// CashSession is one working period of a register. Sales may only post while
// the session is OPEN; CLOSED is terminal.
type CashSession struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CashRegisterID uuid.UUID          `gorm:"type:uuid;not null;index" json:"cash_register_id"`
	Status         enum.SessionStatus `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	OpenedBy       uuid.UUID          `gorm:"type:uuid;not null" json:"opened_by"`
	OpeningAmount  int64              `gorm:"not null;default:0" json:"-"` // cents
	ClosingAmount  *int64             `json:"-"`                           // cents, set on close
	ExpectedAmount *int64             `json:"-"`                           // cents, opening + session sales
	OpenedAt       time.Time          `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time         `json:"closed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	CashRegister CashRegister `gorm:"foreignKey:CashRegisterID" json:"-"`
	Sales        []Sale       `gorm:"foreignKey:CashSessionID" json:"-"`
}

// MarshalJSON converts the monetary fields from cents to decimals
func (s CashSession) MarshalJSON() ([]byte, error) {
	type Alias CashSession
	out := &struct {
		Alias
		OpeningAmount  float64  `json:"opening_amount"`
		ClosingAmount  *float64 `json:"closing_amount,omitempty"`
		ExpectedAmount *float64 `json:"expected_amount,omitempty"`
	}{
		Alias:         Alias(s),
		OpeningAmount: float64(s.OpeningAmount) / 100,
	}
	if s.ClosingAmount != nil {
		v := float64(*s.ClosingAmount) / 100
		out.ClosingAmount = &v
	}
	if s.ExpectedAmount != nil {
		v := float64(*s.ExpectedAmount) / 100
		out.ExpectedAmount = &v
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new cash session
func (s *CashSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashSession model
func (CashSession) TableName() string {
	return "cash_sessions"
}

// IsOpen reports whether the session still accepts sales
func (s *CashSession) IsOpen() bool {
	return s.Status == enum.SessionStatusOpen
}

// Deviation returns closing − expected in cents, or 0 when either side is
// not yet recorded.
func (s *CashSession) Deviation() int64 {
	if s.ClosingAmount == nil || s.ExpectedAmount == nil {
		return 0
	}
	return *s.ClosingAmount - *s.ExpectedAmount
}
