package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// StockRepository defines the persistence contract for the stock ledger.
//
// Quantity changes go through the Atomic* methods only. Each one issues a
// single conditional UPDATE (gated on the current quantity where relevant)
// and appends the matching StockMovement row in the same transaction, so a
// concurrent writer can never produce a lost update or a negative quantity.
type StockRepository interface {
	Create(ctx context.Context, record *entity.StockRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockRecord, error)
	GetByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*entity.StockRecord, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockRecord, int64, error)
	ListAll(ctx context.Context, params *StockFilterParams) ([]entity.StockRecord, int64, error)
	ListBelowMinimum(ctx context.Context, storeID *uuid.UUID) ([]entity.StockRecord, error)

	// AtomicIncrement adds amount to the record's quantity and writes a
	// movement row. Returns the updated record, or nil when the record does
	// not exist.
	AtomicIncrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, error)

	// AtomicDecrement subtracts amount only if the current quantity covers
	// it: UPDATE ... SET quantity = quantity - ? WHERE id = ? AND
	// quantity >= ?. Returns (record, true) on success and (nil, false)
	// when the guard rejected the update.
	AtomicDecrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, bool, error)

	// Transfer moves amount units from the source record to the destination
	// record in one transaction: guarded decrement at the source, increment
	// at the destination, one movement row per side. Returns false (and
	// rolls back) when the source cannot cover the amount.
	Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int, actorID *uuid.UUID) (source, destination *entity.StockRecord, ok bool, err error)

	ListMovements(ctx context.Context, recordID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error)
}

// StockFilterParams contains filtering parameters for ledger-wide queries
type StockFilterParams struct {
	Pagination   *pagination.PaginationParams
	ProductID    *uuid.UUID
	StoreID      *uuid.UUID
	BelowMinimum bool
}
