package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// StockDecrement pairs a ledger record with the units a sale removes from it
type StockDecrement struct {
	StockRecordID uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
}

// SaleRepository defines the persistence contract for sales.
type SaleRepository interface {
	// CreateAtomic persists the sale header, its items, the guarded stock
	// decrements and the movement rows in ONE transaction. The session row is
	// locked and re-checked inside the transaction: sessionOpen is false when
	// the session is no longer OPEN at commit time, and nothing is written.
	// If any record cannot cover its decrement the whole transaction rolls
	// back and the offending product IDs are returned; no sale, item or
	// movement row survives a partial failure.
	CreateAtomic(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, decrements []StockDecrement) (insufficient []uuid.UUID, sessionOpen bool, err error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	StoreID       *uuid.UUID
	CashSessionID *uuid.UUID
	CustomerID    *uuid.UUID
	CreatedBy     *uuid.UUID
	From          *time.Time
	To            *time.Time
}
