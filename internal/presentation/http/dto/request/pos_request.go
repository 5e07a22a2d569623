package request

import "github.com/google/uuid"

// CreateStockRequest represents the enrollment of a product at a store
type CreateStockRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	StoreID      uuid.UUID `json:"store_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"min=0"`
	MinimumStock int       `json:"minimum_stock" binding:"min=0"`
}

// StockAmountRequest represents an add or remove on a stock record
type StockAmountRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// TransferRequest represents a stock transfer between stores
type TransferRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	FromStoreID uuid.UUID `json:"from_store_id" binding:"required"`
	ToStoreID   uuid.UUID `json:"to_store_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

// CreateRegisterRequest represents a cash register creation request
type CreateRegisterRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
	Name    string    `json:"name" binding:"required,min=2,max=100"`
}

// OpenSessionRequest represents a session open request
type OpenSessionRequest struct {
	CashRegisterID uuid.UUID `json:"cash_register_id" binding:"required"`
	OpeningAmount  float64   `json:"opening_amount" binding:"min=0"`
}

// CloseSessionRequest represents a session close request
type CloseSessionRequest struct {
	ClosingAmount float64 `json:"closing_amount" binding:"min=0"`
}

// SaleItemRequest is one line of a sale request
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"min=0"`
	Discount  float64   `json:"discount" binding:"min=0"`
}

// CreateSaleRequest represents a point-of-sale transaction request
type CreateSaleRequest struct {
	CashSessionID uuid.UUID         `json:"cash_session_id" binding:"required"`
	CustomerID    *uuid.UUID        `json:"customer_id"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount      float64           `json:"discount" binding:"min=0"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card transfer"`
}
