package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a scheduled in-store viewing of a watch
type Appointment struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	StoreID     uuid.UUID              `gorm:"type:uuid;not null;index" json:"store_id"`
	CustomerID  uuid.UUID              `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProductID   *uuid.UUID             `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ScheduledAt time.Time              `gorm:"not null;index" json:"scheduled_at"`
	Status      enum.AppointmentStatus `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	Notes       *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   uuid.UUID              `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Store    Store    `gorm:"foreignKey:StoreID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Product  *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
