package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection groups watches into a brand line (e.g. "Diver", "Dress",
// a manufacturer series). The storefront browses by collection.
type Collection struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Brand       *string        `gorm:"size:255" json:"brand,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new collection
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
