package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/quartzsoft/tempus-api/pkg/utils"
)

// SessionService manages cash registers and their sessions. A register has at
// most one OPEN session at any time; sales can only post against an OPEN one.
type SessionService struct {
	sessionRepo  repository.SessionRepository
	registerRepo repository.RegisterRepository
	storeRepo    repository.StoreRepository
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repository.SessionRepository,
	registerRepo repository.RegisterRepository,
	storeRepo repository.StoreRepository,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		registerRepo: registerRepo,
		storeRepo:    storeRepo,
	}
}

// CreateRegister creates a cash register at a store
func (s *SessionService) CreateRegister(ctx context.Context, storeID uuid.UUID, name string) (*entity.CashRegister, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	register := &entity.CashRegister{
		StoreID: storeID,
		Name:    name,
	}
	if err := s.registerRepo.Create(ctx, register); err != nil {
		return nil, err
	}
	return register, nil
}

// GetRegister retrieves a cash register by ID
func (s *SessionService) GetRegister(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	register, err := s.registerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Cash register")
	}
	return register, nil
}

// ListRegisters lists the registers of a store
func (s *SessionService) ListRegisters(ctx context.Context, storeID uuid.UUID) ([]entity.CashRegister, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return s.registerRepo.ListByStore(ctx, storeID)
}

// OpenSession opens a session on a register with a counted opening float.
// Opening while the register already has an OPEN session is a conflict, no
// matter how many requests race for it.
func (s *SessionService) OpenSession(ctx context.Context, registerID, actorID uuid.UUID, openingAmount float64) (*entity.CashSession, error) {
	if openingAmount < 0 {
		return nil, apperror.NewBadRequestError("Opening amount cannot be negative")
	}

	register, err := s.registerRepo.GetByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Cash register")
	}

	session := &entity.CashSession{
		ID:             uuid.New(),
		CashRegisterID: registerID,
		OpenedBy:       actorID,
		OpeningAmount:  utils.ToCents(openingAmount),
		OpenedAt:       time.Now().UTC(),
	}

	created, err := s.sessionRepo.OpenSession(ctx, session)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, apperror.NewConflictError("Register already has an open session")
	}

	return s.sessionRepo.GetByID(ctx, session.ID)
}

// CloseSession closes an open session with a counted closing amount. The
// expected amount is the opening float plus the completed sales of the
// session; the caller reads the deviation off the returned session. Closing a
// session that is already closed is rejected.
func (s *SessionService) CloseSession(ctx context.Context, sessionID uuid.UUID, closingAmount float64) (*entity.CashSession, error) {
	if closingAmount < 0 {
		return nil, apperror.NewBadRequestError("Closing amount cannot be negative")
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	if !session.IsOpen() {
		return nil, apperror.NewBadRequestError("Session is already closed")
	}

	salesTotal, err := s.sessionRepo.SumSessionSales(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	expected := session.OpeningAmount + salesTotal

	ok, err := s.sessionRepo.CloseSession(ctx, sessionID, utils.ToCents(closingAmount), expected, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !ok {
		// another request closed it between the read and the update
		return nil, apperror.NewBadRequestError("Session is already closed")
	}

	return s.sessionRepo.GetByID(ctx, sessionID)
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Cash session")
	}
	return session, nil
}

// GetOpenSession retrieves the open session of a register, if any
func (s *SessionService) GetOpenSession(ctx context.Context, registerID uuid.UUID) (*entity.CashSession, error) {
	register, err := s.registerRepo.GetByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewNotFoundError("Cash register")
	}

	session, err := s.sessionRepo.GetOpenByRegister(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Open session")
	}
	return session, nil
}

// ListOpenSessions lists every currently open session
func (s *SessionService) ListOpenSessions(ctx context.Context) ([]entity.CashSession, error) {
	return s.sessionRepo.ListOpen(ctx)
}

// ListClosedSessions lists closed sessions with optional filters
func (s *SessionService) ListClosedSessions(ctx context.Context, params *repository.SessionFilterParams) (*pagination.PaginatedResult[entity.CashSession], error) {
	sessions, total, err := s.sessionRepo.ListClosed(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sessions, pag), nil
}
