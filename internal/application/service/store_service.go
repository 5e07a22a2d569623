package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"gorm.io/gorm"
)

// StoreService manages the retailer's branches
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CreateStoreInput represents the data needed to create a store
type CreateStoreInput struct {
	Name    string
	Code    string
	Address *string
	Phone   *string
	Email   *string
}

// CreateStore creates a store
func (s *StoreService) CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error) {
	existing, err := s.storeRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Store code is already in use")
	}

	store := &entity.Store{
		Name:    input.Name,
		Code:    input.Code,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		Active:  true,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Store code is already in use")
		}
		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store by ID
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// UpdateStoreInput represents the data for updating a store
type UpdateStoreInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Active  *bool
}

// UpdateStore updates a store
func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Address != nil {
		store.Address = input.Address
	}
	if input.Phone != nil {
		store.Phone = input.Phone
	}
	if input.Email != nil {
		store.Email = input.Email
	}
	if input.Active != nil {
		store.Active = *input.Active
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore soft-deletes a store
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}
	return s.storeRepo.Delete(ctx, id)
}

// ListStores lists stores
func (s *StoreService) ListStores(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Store], error) {
	stores, total, err := s.storeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(stores, pag), nil
}
