package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	domainRepo "github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"gorm.io/gorm"
)

// errInsufficientStock aborts a transaction when a guarded decrement affects
// zero rows. Never returned to callers; translated to a bool at the boundary.
var errInsufficientStock = errors.New("insufficient stock")

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, record *entity.StockRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *stockRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockRecord, error) {
	var record entity.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Product").Preload("Store").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *stockRepository) GetByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*entity.StockRecord, error) {
	var record entity.StockRecord
	err := r.db.WithContext(ctx).
		First(&record, "product_id = ? AND store_id = ?", productID, storeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *stockRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockRecord, int64, error) {
	var records []entity.StockRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockRecord{}).Where("store_id = ?", storeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Product").Preload("Store").
		Order("updated_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *stockRepository) ListAll(ctx context.Context, params *domainRepo.StockFilterParams) ([]entity.StockRecord, int64, error) {
	var records []entity.StockRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockRecord{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	if params.BelowMinimum {
		query = query.Where("quantity <= minimum_stock")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").Preload("Store").
		Order("updated_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *stockRepository) ListBelowMinimum(ctx context.Context, storeID *uuid.UUID) ([]entity.StockRecord, error) {
	var records []entity.StockRecord
	query := r.db.WithContext(ctx).Where("quantity <= minimum_stock")
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}
	err := query.Preload("Product").Preload("Store").Find(&records).Error
	return records, err
}

// AtomicIncrement adds amount to the record and appends a movement row in one
// transaction. Returns nil when the record does not exist.
func (r *stockRepository) AtomicIncrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, error) {
	var record entity.StockRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.StockRecord{}).
			Where("id = ?", id).
			Update("quantity", gorm.Expr("quantity + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}

		movement := &entity.StockMovement{
			StockRecordID: id,
			Type:          movType,
			Quantity:      amount,
			QuantityAfter: record.Quantity,
			ReferenceID:   referenceID,
			PerformedBy:   actorID,
		}
		return tx.Create(movement).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// AtomicDecrement subtracts amount only when the quantity covers it:
// UPDATE stock_records SET quantity = quantity - ? WHERE id = ? AND quantity >= ?
// A zero row count means the guard rejected the update and nothing was written.
func (r *stockRepository) AtomicDecrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, bool, error) {
	var record entity.StockRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.StockRecord{}).
			Where("id = ? AND quantity >= ?", id, amount).
			Update("quantity", gorm.Expr("quantity - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errInsufficientStock
		}

		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}

		movement := &entity.StockMovement{
			StockRecordID: id,
			Type:          movType,
			Quantity:      -amount,
			QuantityAfter: record.Quantity,
			ReferenceID:   referenceID,
			PerformedBy:   actorID,
		}
		return tx.Create(movement).Error
	})

	if errors.Is(err, errInsufficientStock) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &record, true, nil
}

// Transfer applies the guarded decrement at the source and the increment at
// the destination inside one transaction. Either both commit or neither does,
// so the sum of the two quantities is unchanged by any observable outcome.
func (r *stockRepository) Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int, actorID *uuid.UUID) (*entity.StockRecord, *entity.StockRecord, bool, error) {
	var source, destination entity.StockRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.StockRecord{}).
			Where("id = ? AND quantity >= ?", sourceID, amount).
			Update("quantity", gorm.Expr("quantity - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errInsufficientStock
		}

		result = tx.Model(&entity.StockRecord{}).
			Where("id = ?", destinationID).
			Update("quantity", gorm.Expr("quantity + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// destination disappeared between the lookup and the write
			return gorm.ErrRecordNotFound
		}

		if err := tx.First(&source, "id = ?", sourceID).Error; err != nil {
			return err
		}
		if err := tx.First(&destination, "id = ?", destinationID).Error; err != nil {
			return err
		}

		movements := []entity.StockMovement{
			{
				StockRecordID: sourceID,
				Type:          enum.MovementTypeTransferOut,
				Quantity:      -amount,
				QuantityAfter: source.Quantity,
				ReferenceID:   &destinationID,
				PerformedBy:   actorID,
			},
			{
				StockRecordID: destinationID,
				Type:          enum.MovementTypeTransferIn,
				Quantity:      amount,
				QuantityAfter: destination.Quantity,
				ReferenceID:   &sourceID,
				PerformedBy:   actorID,
			},
		}
		return tx.Create(&movements).Error
	})

	if errors.Is(err, errInsufficientStock) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, err
	}
	return &source, &destination, true, nil
}

func (r *stockRepository) ListMovements(ctx context.Context, recordID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{}).Where("stock_record_id = ?", recordID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&movements).Error

	return movements, total, err
}
