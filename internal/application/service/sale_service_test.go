package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type saleServiceMocks struct {
	saleRepo     *MockSaleRepository
	sessionRepo  *MockSessionRepository
	registerRepo *MockRegisterRepository
	stockRepo    *MockStockRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
}

func newSaleService() (*service.SaleService, *saleServiceMocks) {
	m := &saleServiceMocks{
		saleRepo:     new(MockSaleRepository),
		sessionRepo:  new(MockSessionRepository),
		registerRepo: new(MockRegisterRepository),
		stockRepo:    new(MockStockRepository),
		productRepo:  new(MockProductRepository),
		customerRepo: new(MockCustomerRepository),
	}
	svc := service.NewSaleService(m.saleRepo, m.sessionRepo, m.registerRepo, m.stockRepo, m.productRepo, m.customerRepo)
	return svc, m
}

func TestRecordSale_Success(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	recordID := uuid.New()
	actorID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: storeID}, nil)
	m.productRepo.On("GetByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Submariner Date"}, nil)
	m.stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).
		Return(&entity.StockRecord{ID: recordID, ProductID: productID, StoreID: storeID, Quantity: 3}, nil)

	m.saleRepo.On("CreateAtomic", mock.Anything, mock.AnythingOfType("*entity.Sale"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sale := args.Get(1).(*entity.Sale)
			items := args.Get(2).([]entity.SaleItem)
			decrements := args.Get(3).([]repository.StockDecrement)

			// 2 × 9500.00 − 500.00 line discount = 18500.00
			assert.Equal(t, int64(1850000), sale.SubTotal)
			// header discount 1000.00 → total 17500.00
			assert.Equal(t, int64(1750000), sale.Total)
			assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
			assert.Equal(t, storeID, sale.StoreID)

			assert.Len(t, items, 1)
			assert.Equal(t, int64(950000), items[0].UnitPrice)
			assert.Equal(t, items[0].SubTotal, sale.SubTotal)

			assert.Len(t, decrements, 1)
			assert.Equal(t, recordID, decrements[0].StockRecordID)
			assert.Equal(t, 2, decrements[0].Quantity)
		}).
		Return([]uuid.UUID{}, true, nil)
	m.saleRepo.On("GetWithItems", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.Sale{Status: enum.SaleStatusCompleted, Total: 1750000}, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items: []service.SaleItemInput{
			{ProductID: productID, Quantity: 2, UnitPrice: 9500, Discount: 500},
		},
		Discount:      1000,
		PaymentMethod: enum.PaymentMethodCard,
		CreatedBy:     actorID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, sale)
	m.saleRepo.AssertExpectations(t)
}

func TestRecordSale_NoItems(t *testing.T) {
	svc, m := newSaleService()

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	m.sessionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRecordSale_InvalidPaymentMethod(t *testing.T) {
	svc, _ := newSaleService()

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: uuid.New(),
		Items:         []service.SaleItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10}},
		PaymentMethod: enum.PaymentMethod("cheque"),
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestRecordSale_SessionNotFound(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	m.sessionRepo.On("GetByID", mock.Anything, sessionID).Return(nil, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestRecordSale_SessionClosed(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, Status: enum.SessionStatusClosed}, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	m.saleRepo.AssertNotCalled(t, "CreateAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_CustomerNotFound(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	customerID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: uuid.New()}, nil)
	m.customerRepo.On("GetByID", mock.Anything, customerID).Return(nil, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		CustomerID:    &customerID,
		Items:         []service.SaleItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestRecordSale_ProductNotStockedAtStore(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: storeID}, nil)
	m.productRepo.On("GetByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Speedmaster"}, nil)
	m.stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).Return(nil, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: productID, Quantity: 1, UnitPrice: 4200}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	m.saleRepo.AssertNotCalled(t, "CreateAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// When the transaction reports products it could not cover, the sale must
// not come back and the error names the shortfall.
func TestRecordSale_InsufficientStock(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	recordID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: storeID}, nil)
	m.productRepo.On("GetByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Nautilus"}, nil)
	m.stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).
		Return(&entity.StockRecord{ID: recordID, Quantity: 1}, nil)
	m.saleRepo.On("CreateAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]uuid.UUID{productID}, true, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: productID, Quantity: 5, UnitPrice: 30000}},
		PaymentMethod: enum.PaymentMethodTransfer,
	})

	assert.Nil(t, sale)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Nautilus")
	m.saleRepo.AssertNotCalled(t, "GetWithItems", mock.Anything, mock.Anything)
}

// The early status check can see an OPEN session that another till closes
// before the sale transaction commits. The repository re-checks the locked
// session row inside the transaction; when that guard rejects, no sale comes
// back.
func TestRecordSale_SessionClosesBeforeCommit(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	recordID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: storeID}, nil)
	m.productRepo.On("GetByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Speedmaster"}, nil)
	m.stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).
		Return(&entity.StockRecord{ID: recordID, Quantity: 5}, nil)
	m.saleRepo.On("CreateAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: productID, Quantity: 1, UnitPrice: 6200}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Cash session is not open", appErr.Message)
	m.saleRepo.AssertNotCalled(t, "GetWithItems", mock.Anything, mock.Anything)
}

func TestRecordSale_DiscountExceedsTotal(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: storeID}, nil)
	m.productRepo.On("GetByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Tank"}, nil)
	m.stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).
		Return(&entity.StockRecord{ID: uuid.New(), Quantity: 10}, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: productID, Quantity: 1, UnitPrice: 100}},
		Discount:      200,
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	m.saleRepo.AssertNotCalled(t, "CreateAtomic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_ZeroQuantityLine(t *testing.T) {
	svc, m := newSaleService()

	sessionID := uuid.New()
	registerID := uuid.New()

	m.sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, CashRegisterID: registerID, Status: enum.SessionStatusOpen}, nil)
	m.registerRepo.On("GetByID", mock.Anything, registerID).
		Return(&entity.CashRegister{ID: registerID, StoreID: uuid.New()}, nil)

	sale, err := svc.RecordSale(context.Background(), &service.RecordSaleInput{
		CashSessionID: sessionID,
		Items:         []service.SaleItemInput{{ProductID: uuid.New(), Quantity: 0, UnitPrice: 100}},
		PaymentMethod: enum.PaymentMethodCash,
	})

	assert.Nil(t, sale)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
