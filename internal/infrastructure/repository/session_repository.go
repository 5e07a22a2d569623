package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	domainRepo "github.com/quartzsoft/tempus-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new cash session repository
func NewSessionRepository(db *gorm.DB) domainRepo.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	var session entity.CashSession
	err := r.db.WithContext(ctx).
		Preload("CashRegister").
		First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) GetOpenByRegister(ctx context.Context, registerID uuid.UUID) (*entity.CashSession, error) {
	var session entity.CashSession
	err := r.db.WithContext(ctx).
		First(&session, "cash_register_id = ? AND status = ?", registerID, enum.SessionStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

// OpenSession inserts the session only when the register has no OPEN session.
// The conditional INSERT handles the common case; the partial unique index on
// (cash_register_id) WHERE status = 'OPEN' catches the remaining window where
// two opens race under read committed.
func (r *sessionRepository) OpenSession(ctx context.Context, session *entity.CashSession) (bool, error) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.OpenedAt.IsZero() {
		session.OpenedAt = time.Now()
	}
	session.Status = enum.SessionStatusOpen

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO cash_sessions
			(id, cash_register_id, status, opened_by, opening_amount, opened_at, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM cash_sessions
			WHERE cash_register_id = ? AND status = ?
		)`,
		session.ID, session.CashRegisterID, enum.SessionStatusOpen, session.OpenedBy,
		session.OpeningAmount, session.OpenedAt,
		session.CashRegisterID, enum.SessionStatusOpen,
	)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CloseSession transitions OPEN → CLOSED. Guarding on status makes the
// close idempotence decision in the database: zero rows affected means the
// session was already closed (or never existed).
func (r *sessionRepository) CloseSession(ctx context.Context, id uuid.UUID, closingAmount, expectedAmount int64, closedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.CashSession{}).
		Where("id = ? AND status = ?", id, enum.SessionStatusOpen).
		Updates(map[string]interface{}{
			"status":          enum.SessionStatusClosed,
			"closing_amount":  closingAmount,
			"expected_amount": expectedAmount,
			"closed_at":       closedAt,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *sessionRepository) SumSessionSales(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("cash_session_id = ? AND status = ?", sessionID, enum.SaleStatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *sessionRepository) ListOpen(ctx context.Context) ([]entity.CashSession, error) {
	var sessions []entity.CashSession
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.SessionStatusOpen).
		Preload("CashRegister").
		Order("opened_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) ListClosed(ctx context.Context, params *domainRepo.SessionFilterParams) ([]entity.CashSession, int64, error) {
	var sessions []entity.CashSession
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashSession{}).
		Where("status = ?", enum.SessionStatusClosed)

	if params.CashRegisterID != nil {
		query = query.Where("cash_register_id = ?", *params.CashRegisterID)
	}

	if params.OpenedBy != nil {
		query = query.Where("opened_by = ?", *params.OpenedBy)
	}

	if params.From != nil {
		query = query.Where("closed_at >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("closed_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("CashRegister").
		Order("closed_at DESC").
		Find(&sessions).Error

	return sessions, total, err
}

type registerRepository struct {
	db *gorm.DB
}

// NewRegisterRepository creates a new cash register repository
func NewRegisterRepository(db *gorm.DB) domainRepo.RegisterRepository {
	return &registerRepository{db: db}
}

func (r *registerRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	return r.db.WithContext(ctx).Create(register).Error
}

func (r *registerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	var register entity.CashRegister
	err := r.db.WithContext(ctx).First(&register, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &register, err
}

func (r *registerRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.CashRegister, error) {
	var registers []entity.CashRegister
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&registers).Error
	return registers, err
}
