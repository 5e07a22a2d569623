package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// AppointmentService manages viewing appointments, where a customer books a
// slot at a store to see a specific watch.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
	storeRepo       repository.StoreRepository
	productRepo     repository.ProductRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		storeRepo:       storeRepo,
		productRepo:     productRepo,
	}
}

// CreateAppointmentInput represents the data needed to book an appointment
type CreateAppointmentInput struct {
	StoreID     uuid.UUID
	CustomerID  uuid.UUID
	ProductID   *uuid.UUID
	ScheduledAt time.Time
	Notes       *string
	CreatedBy   uuid.UUID
}

// CreateAppointment books an appointment
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	if input.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Appointment cannot be scheduled in the past")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *input.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
	}

	appointment := &entity.Appointment{
		StoreID:     input.StoreID,
		CustomerID:  input.CustomerID,
		ProductID:   input.ProductID,
		ScheduledAt: input.ScheduledAt,
		Status:      enum.AppointmentStatusScheduled,
		Notes:       input.Notes,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// TransitionStatus moves an appointment through its lifecycle. SCHEDULED may
// become COMPLETED or CANCELLED; both of those are terminal.
func (s *AppointmentService) TransitionStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) (*entity.Appointment, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid appointment status")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Cannot transition appointment from %s to %s", appointment.Status, status))
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	appointment.Status = status
	return appointment, nil
}

// RescheduleAppointment moves a scheduled appointment to a new time
func (s *AppointmentService) RescheduleAppointment(ctx context.Context, id uuid.UUID, scheduledAt time.Time) (*entity.Appointment, error) {
	if scheduledAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Appointment cannot be scheduled in the past")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if appointment.Status != enum.AppointmentStatusScheduled {
		return nil, apperror.NewBadRequestError("Only scheduled appointments can be rescheduled")
	}

	appointment.ScheduledAt = scheduledAt
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListAppointments lists appointments with optional filters
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}
