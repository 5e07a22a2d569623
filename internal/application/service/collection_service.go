package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/quartzsoft/tempus-api/pkg/utils"
	"gorm.io/gorm"
)

// CollectionService manages watch collections (product lines)
type CollectionService struct {
	collectionRepo repository.CollectionRepository
}

// NewCollectionService creates a new collection service
func NewCollectionService(collectionRepo repository.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo}
}

// CreateCollectionInput represents the data needed to create a collection
type CreateCollectionInput struct {
	Name        string
	Brand       *string
	Description *string
}

// CreateCollection creates a collection
func (s *CollectionService) CreateCollection(ctx context.Context, input *CreateCollectionInput) (*entity.Collection, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.collectionRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Collection already exists")
	}

	collection := &entity.Collection{
		Name:        input.Name,
		Slug:        slug,
		Brand:       input.Brand,
		Description: input.Description,
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Collection already exists")
		}
		return nil, err
	}

	return collection, nil
}

// GetCollection retrieves a collection by ID
func (s *CollectionService) GetCollection(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	return collection, nil
}

// UpdateCollectionInput represents the data for updating a collection
type UpdateCollectionInput struct {
	Name        *string
	Brand       *string
	Description *string
}

// UpdateCollection updates a collection
func (s *CollectionService) UpdateCollection(ctx context.Context, id uuid.UUID, input *UpdateCollectionInput) (*entity.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}

	if input.Name != nil {
		collection.Name = *input.Name
		collection.Slug = utils.Slugify(*input.Name)
	}
	if input.Brand != nil {
		collection.Brand = input.Brand
	}
	if input.Description != nil {
		collection.Description = input.Description
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Collection already exists")
		}
		return nil, err
	}
	return collection, nil
}

// DeleteCollection soft-deletes a collection
func (s *CollectionService) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if collection == nil {
		return apperror.NewNotFoundError("Collection")
	}
	return s.collectionRepo.Delete(ctx, id)
}

// ListCollections lists collections
func (s *CollectionService) ListCollections(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Collection], error) {
	collections, total, err := s.collectionRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(collections, pag), nil
}
