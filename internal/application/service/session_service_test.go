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

func newSessionService() (*service.SessionService, *MockSessionRepository, *MockRegisterRepository, *MockStoreRepository) {
	sessionRepo := new(MockSessionRepository)
	registerRepo := new(MockRegisterRepository)
	storeRepo := new(MockStoreRepository)
	return service.NewSessionService(sessionRepo, registerRepo, storeRepo), sessionRepo, registerRepo, storeRepo
}

func TestOpenSession_Success(t *testing.T) {
	svc, sessionRepo, registerRepo, _ := newSessionService()

	registerID := uuid.New()
	actorID := uuid.New()

	registerRepo.On("GetByID", mock.Anything, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	sessionRepo.On("OpenSession", mock.Anything, mock.AnythingOfType("*entity.CashSession")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*entity.CashSession)
			assert.Equal(t, registerID, s.CashRegisterID)
			assert.Equal(t, int64(10050), s.OpeningAmount)
		}).
		Return(true, nil)
	sessionRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.CashSession{CashRegisterID: registerID, Status: enum.SessionStatusOpen, OpeningAmount: 10050}, nil)

	session, err := svc.OpenSession(context.Background(), registerID, actorID, 100.50)

	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.True(t, session.IsOpen())
	sessionRepo.AssertExpectations(t)
}

func TestOpenSession_RegisterNotFound(t *testing.T) {
	svc, sessionRepo, registerRepo, _ := newSessionService()

	registerID := uuid.New()
	registerRepo.On("GetByID", mock.Anything, registerID).Return(nil, nil)

	session, err := svc.OpenSession(context.Background(), registerID, uuid.New(), 50)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	sessionRepo.AssertNotCalled(t, "OpenSession", mock.Anything, mock.Anything)
}

func TestOpenSession_AlreadyOpen(t *testing.T) {
	svc, sessionRepo, registerRepo, _ := newSessionService()

	registerID := uuid.New()

	registerRepo.On("GetByID", mock.Anything, registerID).Return(&entity.CashRegister{ID: registerID}, nil)
	sessionRepo.On("OpenSession", mock.Anything, mock.AnythingOfType("*entity.CashSession")).Return(false, nil)

	session, err := svc.OpenSession(context.Background(), registerID, uuid.New(), 50)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestOpenSession_NegativeOpeningAmount(t *testing.T) {
	svc, _, registerRepo, _ := newSessionService()

	session, err := svc.OpenSession(context.Background(), uuid.New(), uuid.New(), -1)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	registerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCloseSession_Success(t *testing.T) {
	svc, sessionRepo, _, _ := newSessionService()

	sessionID := uuid.New()
	open := &entity.CashSession{ID: sessionID, Status: enum.SessionStatusOpen, OpeningAmount: 10000}

	closing := int64(25000)
	expected := int64(10000 + 14800)
	closed := &entity.CashSession{
		ID:             sessionID,
		Status:         enum.SessionStatusClosed,
		OpeningAmount:  10000,
		ClosingAmount:  &closing,
		ExpectedAmount: &expected,
	}

	sessionRepo.On("GetByID", mock.Anything, sessionID).Return(open, nil).Once()
	sessionRepo.On("SumSessionSales", mock.Anything, sessionID).Return(int64(14800), nil)
	sessionRepo.On("CloseSession", mock.Anything, sessionID, int64(25000), int64(24800), mock.AnythingOfType("time.Time")).
		Return(true, nil)
	sessionRepo.On("GetByID", mock.Anything, sessionID).Return(closed, nil).Once()

	session, err := svc.CloseSession(context.Background(), sessionID, 250)

	assert.NoError(t, err)
	assert.False(t, session.IsOpen())
	// declared 250.00 against expected 248.00 leaves a +2.00 deviation
	assert.Equal(t, int64(200), session.Deviation())
	sessionRepo.AssertExpectations(t)
}

func TestCloseSession_NotFound(t *testing.T) {
	svc, sessionRepo, _, _ := newSessionService()

	sessionID := uuid.New()
	sessionRepo.On("GetByID", mock.Anything, sessionID).Return(nil, nil)

	session, err := svc.CloseSession(context.Background(), sessionID, 100)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCloseSession_AlreadyClosed(t *testing.T) {
	svc, sessionRepo, _, _ := newSessionService()

	sessionID := uuid.New()
	sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, Status: enum.SessionStatusClosed}, nil)

	session, err := svc.CloseSession(context.Background(), sessionID, 100)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	sessionRepo.AssertNotCalled(t, "CloseSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Two closes racing: the second passes the status read but the guarded
// update rejects it.
func TestCloseSession_LostRace(t *testing.T) {
	svc, sessionRepo, _, _ := newSessionService()

	sessionID := uuid.New()
	sessionRepo.On("GetByID", mock.Anything, sessionID).
		Return(&entity.CashSession{ID: sessionID, Status: enum.SessionStatusOpen, OpeningAmount: 5000}, nil)
	sessionRepo.On("SumSessionSales", mock.Anything, sessionID).Return(int64(0), nil)
	sessionRepo.On("CloseSession", mock.Anything, sessionID, int64(5000), int64(5000), mock.AnythingOfType("time.Time")).
		Return(false, nil)

	session, err := svc.CloseSession(context.Background(), sessionID, 50)

	assert.Nil(t, session)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateRegister_StoreNotFound(t *testing.T) {
	svc, _, registerRepo, storeRepo := newSessionService()

	storeID := uuid.New()
	storeRepo.On("GetByID", mock.Anything, storeID).Return(nil, nil)

	register, err := svc.CreateRegister(context.Background(), storeID, "Front desk")

	assert.Nil(t, register)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	registerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
