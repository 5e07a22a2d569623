package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/stretchr/testify/mock"
)

// MockStockRepository is a mock implementation of repository.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) Create(ctx context.Context, record *entity.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StockRecord), args.Error(1)
}

func (m *MockStockRepository) GetByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*entity.StockRecord, error) {
	args := m.Called(ctx, productID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StockRecord), args.Error(1)
}

func (m *MockStockRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockRecord, int64, error) {
	args := m.Called(ctx, storeID, params)
	return args.Get(0).([]entity.StockRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockRepository) ListAll(ctx context.Context, params *repository.StockFilterParams) ([]entity.StockRecord, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.StockRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockRepository) ListBelowMinimum(ctx context.Context, storeID *uuid.UUID) ([]entity.StockRecord, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]entity.StockRecord), args.Error(1)
}

func (m *MockStockRepository) AtomicIncrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, error) {
	args := m.Called(ctx, id, amount, movType, referenceID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StockRecord), args.Error(1)
}

func (m *MockStockRepository) AtomicDecrement(ctx context.Context, id uuid.UUID, amount int, movType enum.MovementType, referenceID, actorID *uuid.UUID) (*entity.StockRecord, bool, error) {
	args := m.Called(ctx, id, amount, movType, referenceID, actorID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.StockRecord), args.Bool(1), args.Error(2)
}

func (m *MockStockRepository) Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int, actorID *uuid.UUID) (*entity.StockRecord, *entity.StockRecord, bool, error) {
	args := m.Called(ctx, sourceID, destinationID, amount, actorID)
	var src, dst *entity.StockRecord
	if args.Get(0) != nil {
		src = args.Get(0).(*entity.StockRecord)
	}
	if args.Get(1) != nil {
		dst = args.Get(1).(*entity.StockRecord)
	}
	return src, dst, args.Bool(2), args.Error(3)
}

func (m *MockStockRepository) ListMovements(ctx context.Context, recordID uuid.UUID, params *pagination.PaginationParams) ([]entity.StockMovement, int64, error) {
	args := m.Called(ctx, recordID, params)
	return args.Get(0).([]entity.StockMovement), args.Get(1).(int64), args.Error(2)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CashSession), args.Error(1)
}

func (m *MockSessionRepository) GetOpenByRegister(ctx context.Context, registerID uuid.UUID) (*entity.CashSession, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CashSession), args.Error(1)
}

func (m *MockSessionRepository) OpenSession(ctx context.Context, session *entity.CashSession) (bool, error) {
	args := m.Called(ctx, session)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) CloseSession(ctx context.Context, id uuid.UUID, closingAmount, expectedAmount int64, closedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, closingAmount, expectedAmount, closedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) SumSessionSales(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) ListOpen(ctx context.Context) ([]entity.CashSession, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CashSession), args.Error(1)
}

func (m *MockSessionRepository) ListClosed(ctx context.Context, params *repository.SessionFilterParams) ([]entity.CashSession, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.CashSession), args.Get(1).(int64), args.Error(2)
}

// MockRegisterRepository is a mock implementation of repository.RegisterRepository
type MockRegisterRepository struct {
	mock.Mock
}

func (m *MockRegisterRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockRegisterRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CashRegister), args.Error(1)
}

func (m *MockRegisterRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.CashRegister, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]entity.CashRegister), args.Error(1)
}

// MockSaleRepository is a mock implementation of repository.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateAtomic(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, decrements []repository.StockDecrement) ([]uuid.UUID, bool, error) {
	args := m.Called(ctx, sale, items, decrements)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]uuid.UUID), args.Bool(1), args.Error(2)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Sale), args.Get(1).(int64), args.Error(2)
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByReference(ctx context.Context, reference string) (*entity.Product, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Product), args.Get(1).(int64), args.Error(2)
}

// MockStoreRepository is a mock implementation of repository.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByCode(ctx context.Context, code string) (*entity.Store, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Store), args.Get(1).(int64), args.Error(2)
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Customer), args.Get(1).(int64), args.Error(2)
}
