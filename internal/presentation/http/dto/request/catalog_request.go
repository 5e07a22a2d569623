package request

import "github.com/google/uuid"

// CreateStoreRequest represents a store creation request
type CreateStoreRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Code    string  `json:"code" binding:"required,min=2,max=50"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// UpdateStoreRequest represents a store update request
type UpdateStoreRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Active  *bool   `json:"active"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string     `json:"name" binding:"required,min=2,max=255"`
	Reference    string     `json:"reference" binding:"required,min=2,max=100"`
	Brand        string     `json:"brand" binding:"required,min=2,max=255"`
	CollectionID *uuid.UUID `json:"collection_id"`
	SupplierID   *uuid.UUID `json:"supplier_id"`
	Movement     *string    `json:"movement" binding:"omitempty,max=100"`
	CaseMaterial *string    `json:"case_material" binding:"omitempty,max=100"`
	CaseDiameter *int       `json:"case_diameter" binding:"omitempty,min=1,max=100"`
	Price        float64    `json:"price" binding:"min=0"`
	Description  *string    `json:"description"`
	Featured     bool       `json:"featured"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Brand        *string    `json:"brand" binding:"omitempty,min=2,max=255"`
	CollectionID *uuid.UUID `json:"collection_id"`
	SupplierID   *uuid.UUID `json:"supplier_id"`
	Movement     *string    `json:"movement" binding:"omitempty,max=100"`
	CaseMaterial *string    `json:"case_material" binding:"omitempty,max=100"`
	CaseDiameter *int       `json:"case_diameter" binding:"omitempty,min=1,max=100"`
	Price        *float64   `json:"price" binding:"omitempty,min=0"`
	Description  *string    `json:"description"`
	Featured     *bool      `json:"featured"`
	Active       *bool      `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search       string `form:"search"`
	CollectionID string `form:"collection_id"`
	SupplierID   string `form:"supplier_id"`
	Brand        string `form:"brand"`
	Featured     *bool  `form:"featured"`
	ActiveOnly   bool   `form:"active_only"`
	SortBy       string `form:"sort_by"`
	SortOrder    string `form:"sort_order"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}

// CreateCollectionRequest represents a collection creation request
type CreateCollectionRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Brand       *string `json:"brand" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// UpdateCollectionRequest represents a collection update request
type UpdateCollectionRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Brand       *string `json:"brand" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// SupplierRequest represents a supplier create or update request
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	ContactName   *string `json:"contact_name" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	TaxID         *string `json:"tax_id" binding:"omitempty,max=50"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// CustomerRequest represents a customer create or update request
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// CreateAppointmentRequest represents an appointment booking request
type CreateAppointmentRequest struct {
	StoreID     uuid.UUID  `json:"store_id" binding:"required"`
	CustomerID  uuid.UUID  `json:"customer_id" binding:"required"`
	ProductID   *uuid.UUID `json:"product_id"`
	ScheduledAt string     `json:"scheduled_at" binding:"required"`
	Notes       *string    `json:"notes"`
}

// TransitionAppointmentRequest represents an appointment status change
type TransitionAppointmentRequest struct {
	Status string `json:"status" binding:"required,oneof=COMPLETED CANCELLED"`
}

// RescheduleAppointmentRequest represents an appointment reschedule request
type RescheduleAppointmentRequest struct {
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}
