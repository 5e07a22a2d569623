package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/quartzsoft/tempus-api/pkg/utils"
)

// SaleService records point-of-sale transactions. A sale posts against an
// OPEN cash session, decrements the store's stock and writes its header,
// items and movement rows in one transaction.
type SaleService struct {
	saleRepo     repository.SaleRepository
	sessionRepo  repository.SessionRepository
	registerRepo repository.RegisterRepository
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	sessionRepo repository.SessionRepository,
	registerRepo repository.RegisterRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		sessionRepo:  sessionRepo,
		registerRepo: registerRepo,
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// SaleItemInput is one line of a sale request
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
	Discount  float64
}

// RecordSaleInput carries everything needed to post a sale
type RecordSaleInput struct {
	CashSessionID uuid.UUID
	CustomerID    *uuid.UUID
	Items         []SaleItemInput
	Discount      float64
	PaymentMethod enum.PaymentMethod
	CreatedBy     uuid.UUID
}

// RecordSale posts a sale against an open session. Each line subtotal is
// quantity×unit_price−discount and the sale total is the sum of line
// subtotals minus the sale-level discount; neither may go negative. Stock is
// decremented per line at the session's store; if any product cannot cover
// its quantity the sale does not post at all.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale requires at least one item")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.Discount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	session, err := s.sessionRepo.GetByID(ctx, input.CashSessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	if !session.IsOpen() {
		return nil, apperror.NewBadRequestError("Cash session is not open")
	}

	register, err := s.registerRepo.GetByID(ctx, session.CashRegisterID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Cash register")
	}
	storeID := register.StoreID

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	var (
		items      []entity.SaleItem
		decrements []repository.StockDecrement
		names      = make(map[uuid.UUID]string, len(input.Items))
		subTotal   int64
	)
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if line.UnitPrice < 0 || line.Discount < 0 {
			return nil, apperror.NewBadRequestError("Item prices cannot be negative")
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		names[product.ID] = product.Name

		record, err := s.stockRepo.GetByProductAndStore(ctx, line.ProductID, storeID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product '%s' is not stocked at this store", product.Name))
		}

		unitCents := utils.ToCents(line.UnitPrice)
		discCents := utils.ToCents(line.Discount)
		lineTotal := int64(line.Quantity)*unitCents - discCents
		if lineTotal < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Discount on '%s' exceeds the line amount", product.Name))
		}
		subTotal += lineTotal

		items = append(items, entity.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitCents,
			Discount:  discCents,
			SubTotal:  lineTotal,
		})
		decrements = append(decrements, repository.StockDecrement{
			StockRecordID: record.ID,
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
		})
	}

	discountCents := utils.ToCents(input.Discount)
	total := subTotal - discountCents
	if total < 0 {
		return nil, apperror.NewBadRequestError("Discount exceeds the sale amount")
	}

	sale := &entity.Sale{
		ID:            uuid.New(),
		StoreID:       storeID,
		CashSessionID: input.CashSessionID,
		CustomerID:    input.CustomerID,
		Reference:     utils.GenerateReference("SALE"),
		SubTotal:      subTotal,
		Discount:      discountCents,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        enum.SaleStatusCompleted,
		CreatedBy:     input.CreatedBy,
	}

	insufficient, sessionOpen, err := s.saleRepo.CreateAtomic(ctx, sale, items, decrements)
	if err != nil {
		return nil, err
	}
	if !sessionOpen {
		// the session closed between the early check and the commit
		return nil, apperror.NewBadRequestError("Cash session is not open")
	}
	if len(insufficient) > 0 {
		short := make([]string, 0, len(insufficient))
		for _, id := range insufficient {
			if name, ok := names[id]; ok {
				short = append(short, name)
			} else {
				short = append(short, id.String())
			}
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %s", strings.Join(short, ", ")))
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with optional filters
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
