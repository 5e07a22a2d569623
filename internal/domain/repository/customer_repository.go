package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)
}

// AppointmentFilterParams contains filtering parameters for appointment queries
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	CustomerID *uuid.UUID
	Status     *enum.AppointmentStatus
	From       *time.Time
	To         *time.Time
}
