package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// SessionRepository defines the persistence contract for cash sessions.
//
// Opening and closing are single conditional statements so that two
// concurrent opens for the same register, or a close racing a second close,
// resolve at the database rather than in application code.
type SessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error)
	GetOpenByRegister(ctx context.Context, registerID uuid.UUID) (*entity.CashSession, error)

	// OpenSession inserts the session only if the register has no OPEN
	// session (INSERT ... SELECT ... WHERE NOT EXISTS). Returns false when
	// another open session already holds the register.
	OpenSession(ctx context.Context, session *entity.CashSession) (bool, error)

	// CloseSession transitions OPEN → CLOSED, recording the declared and
	// expected amounts. The UPDATE is guarded on status = OPEN; returns
	// false when the session was not open.
	CloseSession(ctx context.Context, id uuid.UUID, closingAmount, expectedAmount int64, closedAt time.Time) (bool, error)

	// SumSessionSales returns the sum of completed sale totals posted
	// against the session, in cents.
	SumSessionSales(ctx context.Context, sessionID uuid.UUID) (int64, error)

	ListOpen(ctx context.Context) ([]entity.CashSession, error)
	ListClosed(ctx context.Context, params *SessionFilterParams) ([]entity.CashSession, int64, error)
}

// SessionFilterParams contains filtering parameters for closed-session queries
type SessionFilterParams struct {
	Pagination     *pagination.PaginationParams
	CashRegisterID *uuid.UUID
	OpenedBy       *uuid.UUID
	From           *time.Time
	To             *time.Time
}

// RegisterRepository defines the persistence contract for cash registers
type RegisterRepository interface {
	Create(ctx context.Context, register *entity.CashRegister) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.CashRegister, error)
}
