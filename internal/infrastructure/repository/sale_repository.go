package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	domainRepo "github.com/quartzsoft/tempus-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// errSessionClosed aborts the sale transaction when the locked session row
// is no longer OPEN. Translated to a bool at the boundary.
var errSessionClosed = errors.New("session not open")

// CreateAtomic writes the sale header, its items, the guarded stock
// decrements and the movement rows in one transaction. The session row is
// locked FOR UPDATE and its status re-checked first, so a concurrent close
// either waits for this commit or makes this transaction roll back. Every
// decrement runs as UPDATE ... WHERE id = ? AND quantity >= ?; a zero row
// count marks the product insufficient and rolls back the entire sale.
func (r *saleRepository) CreateAtomic(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, decrements []domainRepo.StockDecrement) ([]uuid.UUID, bool, error) {
	var insufficient []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := tx.Exec(
			"SELECT 1 FROM cash_sessions WHERE id = ? AND status = ? FOR UPDATE",
			sale.CashSessionID, enum.SessionStatusOpen,
		)
		if lock.Error != nil {
			return lock.Error
		}
		if lock.RowsAffected == 0 {
			return errSessionClosed
		}

		for _, dec := range decrements {
			result := tx.Model(&entity.StockRecord{}).
				Where("id = ? AND quantity >= ?", dec.StockRecordID, dec.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", dec.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				insufficient = append(insufficient, dec.ProductID)
			}
		}

		// Keep checking every line before giving up so the caller can name
		// all the products that are short, then roll everything back.
		if len(insufficient) > 0 {
			return errInsufficientStock
		}

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].SaleID = sale.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for _, dec := range decrements {
			var record entity.StockRecord
			if err := tx.First(&record, "id = ?", dec.StockRecordID).Error; err != nil {
				return err
			}
			movement := &entity.StockMovement{
				StockRecordID: dec.StockRecordID,
				Type:          enum.MovementTypeSale,
				Quantity:      -dec.Quantity,
				QuantityAfter: record.Quantity,
				ReferenceID:   &sale.ID,
				PerformedBy:   &sale.CreatedBy,
			}
			if err := tx.Create(movement).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if errors.Is(err, errSessionClosed) {
		return nil, false, nil
	}
	if errors.Is(err, errInsufficientStock) {
		return insufficient, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return nil, true, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").Preload("Customer").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	if params.CashSessionID != nil {
		query = query.Where("cash_session_id = ?", *params.CashSessionID)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.CreatedBy != nil {
		query = query.Where("created_by = ?", *params.CreatedBy)
	}

	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}
