package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStockService() (*service.StockService, *MockStockRepository, *MockProductRepository, *MockStoreRepository) {
	stockRepo := new(MockStockRepository)
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	return service.NewStockService(stockRepo, productRepo, storeRepo), stockRepo, productRepo, storeRepo
}

func TestCreateRecord_Success(t *testing.T) {
	svc, stockRepo, productRepo, storeRepo := newStockService()

	productID := uuid.New()
	storeID := uuid.New()

	productRepo.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	storeRepo.On("GetByID", mock.Anything, storeID).Return(&entity.Store{ID: storeID}, nil)
	stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).Return(nil, nil)
	stockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.StockRecord")).Return(nil)

	record, err := svc.CreateRecord(context.Background(), &service.CreateStockInput{
		ProductID:    productID,
		StoreID:      storeID,
		Quantity:     10,
		MinimumStock: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, 10, record.Quantity)
	stockRepo.AssertExpectations(t)
}

func TestCreateRecord_NegativeQuantity(t *testing.T) {
	svc, _, _, _ := newStockService()

	record, err := svc.CreateRecord(context.Background(), &service.CreateStockInput{
		ProductID: uuid.New(),
		StoreID:   uuid.New(),
		Quantity:  -1,
	})

	assert.Nil(t, record)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateRecord_AlreadyStocked(t *testing.T) {
	svc, stockRepo, productRepo, storeRepo := newStockService()

	productID := uuid.New()
	storeID := uuid.New()

	productRepo.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	storeRepo.On("GetByID", mock.Anything, storeID).Return(&entity.Store{ID: storeID}, nil)
	stockRepo.On("GetByProductAndStore", mock.Anything, productID, storeID).
		Return(&entity.StockRecord{ID: uuid.New(), ProductID: productID, StoreID: storeID}, nil)

	record, err := svc.CreateRecord(context.Background(), &service.CreateStockInput{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  5,
	})

	assert.Nil(t, record)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	stockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddStock_Success(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	recordID := uuid.New()
	actorID := uuid.New()
	updated := &entity.StockRecord{ID: recordID, Quantity: 15}

	stockRepo.On("AtomicIncrement", mock.Anything, recordID, 5, enum.MovementTypeEntry, (*uuid.UUID)(nil), &actorID).
		Return(updated, nil)

	record, err := svc.AddStock(context.Background(), recordID, 5, actorID)

	assert.NoError(t, err)
	assert.Equal(t, 15, record.Quantity)
	stockRepo.AssertExpectations(t)
}

func TestAddStock_NegativeAmount(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	record, err := svc.AddStock(context.Background(), uuid.New(), -3, uuid.New())

	assert.Nil(t, record)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	stockRepo.AssertNotCalled(t, "AtomicIncrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddStock_RecordNotFound(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	recordID := uuid.New()
	actorID := uuid.New()

	stockRepo.On("AtomicIncrement", mock.Anything, recordID, 5, enum.MovementTypeEntry, (*uuid.UUID)(nil), &actorID).
		Return(nil, nil)

	record, err := svc.AddStock(context.Background(), recordID, 5, actorID)

	assert.Nil(t, record)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestRemoveStock_Success(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	recordID := uuid.New()
	actorID := uuid.New()

	stockRepo.On("GetByID", mock.Anything, recordID).Return(&entity.StockRecord{ID: recordID, Quantity: 10}, nil)
	stockRepo.On("AtomicDecrement", mock.Anything, recordID, 4, enum.MovementTypeWithdrawal, (*uuid.UUID)(nil), &actorID).
		Return(&entity.StockRecord{ID: recordID, Quantity: 6}, true, nil)

	record, err := svc.RemoveStock(context.Background(), recordID, 4, actorID)

	assert.NoError(t, err)
	assert.Equal(t, 6, record.Quantity)
	stockRepo.AssertExpectations(t)
}

func TestRemoveStock_Insufficient(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	recordID := uuid.New()
	actorID := uuid.New()

	stockRepo.On("GetByID", mock.Anything, recordID).Return(&entity.StockRecord{ID: recordID, Quantity: 3}, nil)
	stockRepo.On("AtomicDecrement", mock.Anything, recordID, 10, enum.MovementTypeWithdrawal, (*uuid.UUID)(nil), &actorID).
		Return(nil, false, nil)

	record, err := svc.RemoveStock(context.Background(), recordID, 10, actorID)

	assert.Nil(t, record)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestRemoveStock_RecordNotFound(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	recordID := uuid.New()
	stockRepo.On("GetByID", mock.Anything, recordID).Return(nil, nil)

	record, err := svc.RemoveStock(context.Background(), recordID, 1, uuid.New())

	assert.Nil(t, record)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	stockRepo.AssertNotCalled(t, "AtomicDecrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_Success(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()
	actorID := uuid.New()
	sourceID := uuid.New()
	destID := uuid.New()

	stockRepo.On("GetByProductAndStore", mock.Anything, productID, fromStore).
		Return(&entity.StockRecord{ID: sourceID, ProductID: productID, StoreID: fromStore, Quantity: 10}, nil)
	stockRepo.On("GetByProductAndStore", mock.Anything, productID, toStore).
		Return(&entity.StockRecord{ID: destID, ProductID: productID, StoreID: toStore, Quantity: 2}, nil)
	stockRepo.On("Transfer", mock.Anything, sourceID, destID, 4, &actorID).
		Return(&entity.StockRecord{ID: sourceID, Quantity: 6}, &entity.StockRecord{ID: destID, Quantity: 6}, true, nil)

	result, err := svc.Transfer(context.Background(), fromStore, toStore, productID, 4, actorID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	// conservation: 10+2 before, 6+6 after
	assert.Equal(t, 12, result.Source.Quantity+result.Destination.Quantity)
	stockRepo.AssertExpectations(t)
}

func TestTransfer_SameStore(t *testing.T) {
	svc, _, _, _ := newStockService()

	storeID := uuid.New()
	result, err := svc.Transfer(context.Background(), storeID, storeID, uuid.New(), 1, uuid.New())

	assert.Nil(t, result)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestTransfer_SourceNotFound(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()

	stockRepo.On("GetByProductAndStore", mock.Anything, productID, fromStore).Return(nil, nil)

	result, err := svc.Transfer(context.Background(), fromStore, toStore, productID, 1, uuid.New())

	assert.Nil(t, result)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestTransfer_DestinationNotFound(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()

	stockRepo.On("GetByProductAndStore", mock.Anything, productID, fromStore).
		Return(&entity.StockRecord{ID: uuid.New(), Quantity: 10}, nil)
	stockRepo.On("GetByProductAndStore", mock.Anything, productID, toStore).Return(nil, nil)

	result, err := svc.Transfer(context.Background(), fromStore, toStore, productID, 1, uuid.New())

	assert.Nil(t, result)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	stockRepo.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_InsufficientAtSource(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()

	stockRepo.On("GetByProductAndStore", mock.Anything, productID, fromStore).
		Return(&entity.StockRecord{ID: uuid.New(), Quantity: 2}, nil)

	result, err := svc.Transfer(context.Background(), fromStore, toStore, productID, 5, uuid.New())

	assert.Nil(t, result)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	stockRepo.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// A transfer that passes the early read but loses the race at the database
// still comes back as a bad request, not a silent partial move.
func TestTransfer_GuardRejectsAtCommit(t *testing.T) {
	svc, stockRepo, _, _ := newStockService()

	productID := uuid.New()
	fromStore := uuid.New()
	toStore := uuid.New()
	actorID := uuid.New()
	sourceID := uuid.New()
	destID := uuid.New()

	stockRepo.On("GetByProductAndStore", mock.Anything, productID, fromStore).
		Return(&entity.StockRecord{ID: sourceID, Quantity: 5}, nil)
	stockRepo.On("GetByProductAndStore", mock.Anything, productID, toStore).
		Return(&entity.StockRecord{ID: destID, Quantity: 0}, nil)
	stockRepo.On("Transfer", mock.Anything, sourceID, destID, 5, &actorID).
		Return(nil, nil, false, nil)

	result, err := svc.Transfer(context.Background(), fromStore, toStore, productID, 5, actorID)

	assert.Nil(t, result)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
