package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/domain/entity"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/pkg/apperror"
	"github.com/quartzsoft/tempus-api/pkg/cache"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
	"github.com/quartzsoft/tempus-api/pkg/utils"
	"gorm.io/gorm"
)

const (
	productCachePrefix = "products:"
	productCacheTTL    = 5 * time.Minute
)

// ProductService manages the watch catalog. Reads go through the cache;
// every write invalidates the whole product keyspace.
type ProductService struct {
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	supplierRepo   repository.SupplierRepository
	cache          cache.Cache
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	collectionRepo repository.CollectionRepository,
	supplierRepo repository.SupplierRepository,
	c cache.Cache,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		supplierRepo:   supplierRepo,
		cache:          c,
	}
}

// CreateProductInput represents the data needed to create a product
type CreateProductInput struct {
	Name         string
	Reference    string
	Brand        string
	CollectionID *uuid.UUID
	SupplierID   *uuid.UUID
	Movement     *string
	CaseMaterial *string
	CaseDiameter *int
	Price        float64
	Description  *string
	Featured     bool
}

// CreateProduct creates a product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	if input.CollectionID != nil {
		collection, err := s.collectionRepo.GetByID(ctx, *input.CollectionID)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			return nil, apperror.NewNotFoundError("Collection")
		}
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	existing, err := s.productRepo.GetByReference(ctx, input.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Reference is already in use")
	}

	product := &entity.Product{
		Name:         input.Name,
		Slug:         utils.Slugify(input.Name),
		Reference:    input.Reference,
		Brand:        input.Brand,
		CollectionID: input.CollectionID,
		SupplierID:   input.SupplierID,
		Movement:     input.Movement,
		CaseMaterial: input.CaseMaterial,
		CaseDiameter: input.CaseDiameter,
		Price:        utils.ToCents(input.Price),
		Description:  input.Description,
		Featured:     input.Featured,
		Active:       true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Reference or slug is already in use")
		}
		return nil, err
	}

	s.invalidate(ctx)
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	key := fmt.Sprintf("%sid:%s", productCachePrefix, id)
	if data, hit, _ := s.cache.Get(ctx, key); hit {
		var product entity.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if data, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, key, data, productCacheTTL)
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its slug
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the data for updating a product
type UpdateProductInput struct {
	Name         *string
	Brand        *string
	CollectionID *uuid.UUID
	SupplierID   *uuid.UUID
	Movement     *string
	CaseMaterial *string
	CaseDiameter *int
	Price        *float64
	Description  *string
	Featured     *bool
	Active       *bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.CollectionID != nil {
		collection, err := s.collectionRepo.GetByID(ctx, *input.CollectionID)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			return nil, apperror.NewNotFoundError("Collection")
		}
		product.CollectionID = input.CollectionID
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = input.SupplierID
	}
	if input.Movement != nil {
		product.Movement = input.Movement
	}
	if input.CaseMaterial != nil {
		product.CaseMaterial = input.CaseMaterial
	}
	if input.CaseDiameter != nil {
		product.CaseDiameter = input.CaseDiameter
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = utils.ToCents(*input.Price)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Slug is already in use")
		}
		return nil, err
	}

	s.invalidate(ctx)
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// ListProducts lists products with filters. List results are cached per
// filter combination.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	key := productListCacheKey(params)
	if data, hit, _ := s.cache.Get(ctx, key); hit {
		var result pagination.PaginatedResult[entity.Product]
		if err := json.Unmarshal(data, &result); err == nil {
			return &result, nil
		}
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	result := pagination.NewPaginatedResult(products, pag)

	if data, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, key, data, productCacheTTL)
	}
	return result, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	// cache invalidation failure is not worth failing the write for
	_ = s.cache.DeletePrefix(ctx, productCachePrefix)
}

func productListCacheKey(params *repository.ProductFilterParams) string {
	collection, supplier := "", ""
	if params.CollectionID != nil {
		collection = params.CollectionID.String()
	}
	if params.SupplierID != nil {
		supplier = params.SupplierID.String()
	}
	featured := ""
	if params.Featured != nil {
		featured = fmt.Sprintf("%t", *params.Featured)
	}
	return fmt.Sprintf("%slist:%d:%d:%s:%s:%s:%s:%t:%s:%s",
		productCachePrefix,
		params.Pagination.Page, params.Pagination.PerPage,
		params.Search, collection, supplier, params.Brand,
		params.ActiveOnly, featured, params.SortBy+":"+params.SortOrder,
	)
}
