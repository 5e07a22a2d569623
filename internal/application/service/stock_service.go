package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"gorm.io/gorm"
)

// StockService owns the per-(product, store) ledger: enrollment, adds,
// removals and inter-store transfers. All quantity arithmetic happens in
// guarded statements at the repository so concurrent requests cannot drive a
// record negative or lose an update.
type StockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewStockService creates a new stock service
func NewStockService(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// CreateStockInput represents the enrollment of a product at a store
type CreateStockInput struct {
	ProductID    uuid.UUID
	StoreID      uuid.UUID
	Quantity     int
	MinimumStock int
}

// CreateRecord enrolls a product at a store. Each (product, store) pair gets
// exactly one record; a second enrollment is a conflict.
func (s *StockService) CreateRecord(ctx context.Context, input *CreateStockInput) (*entity.StockRecord, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}
	if input.MinimumStock < 0 {
		return nil, apperror.NewBadRequestError("Minimum stock cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	existing, err := s.stockRepo.GetByProductAndStore(ctx, input.ProductID, input.StoreID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product is already stocked at this store")
	}

	record := &entity.StockRecord{
		ProductID:    input.ProductID,
		StoreID:      input.StoreID,
		Quantity:     input.Quantity,
		MinimumStock: input.MinimumStock,
	}

	if err := s.stockRepo.Create(ctx, record); err != nil {
		// two enrollments racing past the existence check land here
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Product is already stocked at this store")
		}
		return nil, err
	}

	return record, nil
}

// GetRecord retrieves a stock record by ID
func (s *StockService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.StockRecord, error) {
	record, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Stock record")
	}
	return record, nil
}

// AddStock increases a record's on-hand quantity
func (s *StockService) AddStock(ctx context.Context, recordID uuid.UUID, amount int, actorID uuid.UUID) (*entity.StockRecord, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	record, err := s.stockRepo.AtomicIncrement(ctx, recordID, amount, enum.MovementTypeEntry, nil, &actorID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Stock record")
	}
	return record, nil
}

// RemoveStock decreases a record's on-hand quantity. Removing more than is
// on hand fails and leaves the record untouched.
func (s *StockService) RemoveStock(ctx context.Context, recordID uuid.UUID, amount int, actorID uuid.UUID) (*entity.StockRecord, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	existing, err := s.stockRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Stock record")
	}

	record, ok, err := s.stockRepo.AtomicDecrement(ctx, recordID, amount, enum.MovementTypeWithdrawal, nil, &actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewBadRequestError("Insufficient stock for removal")
	}
	return record, nil
}

// TransferResult carries both sides of a completed transfer
type TransferResult struct {
	Source      *entity.StockRecord `json:"source"`
	Destination *entity.StockRecord `json:"destination"`
}

// Transfer moves quantity units of a product between two stores as one
// atomic unit. The destination store must already stock the product; a
// transfer never enrolls it there.
func (s *StockService) Transfer(ctx context.Context, fromStoreID, toStoreID, productID uuid.UUID, quantity int, actorID uuid.UUID) (*TransferResult, error) {
	if quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}
	if fromStoreID == toStoreID {
		return nil, apperror.NewBadRequestError("Source and destination stores must differ")
	}

	source, err := s.stockRepo.GetByProductAndStore(ctx, productID, fromStoreID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, apperror.NewNotFoundError("Source stock record")
	}

	if source.Quantity < quantity {
		return nil, apperror.NewBadRequestError("Insufficient quantity at source store")
	}

	destination, err := s.stockRepo.GetByProductAndStore(ctx, productID, toStoreID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, apperror.NewNotFoundError("Destination stock record")
	}

	// The early quantity check above gives a fast answer; the transaction's
	// guarded decrement is what actually decides under concurrency.
	src, dst, ok, err := s.stockRepo.Transfer(ctx, source.ID, destination.ID, quantity, &actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewBadRequestError("Insufficient quantity at source store")
	}

	return &TransferResult{Source: src, Destination: dst}, nil
}

// ListByStore lists stock records for one store
func (s *StockService) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockRecord], error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	records, total, err := s.stockRepo.ListByStore(ctx, storeID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// ListAll lists stock records across all stores
func (s *StockService) ListAll(ctx context.Context, params *repository.StockFilterParams) (*pagination.PaginatedResult[entity.StockRecord], error) {
	records, total, err := s.stockRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// ListBelowMinimum lists records at or below their reorder threshold
func (s *StockService) ListBelowMinimum(ctx context.Context, storeID *uuid.UUID) ([]entity.StockRecord, error) {
	return s.stockRepo.ListBelowMinimum(ctx, storeID)
}

// ListMovements lists the audit trail for one record
func (s *StockService) ListMovements(ctx context.Context, recordID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	record, err := s.stockRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Stock record")
	}

	movements, total, err := s.stockRepo.ListMovements(ctx, recordID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}
