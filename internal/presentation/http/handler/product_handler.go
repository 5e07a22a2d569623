package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
	"github.com/quartzsoft/tempus-api/pkg/pagination"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:         req.Name,
		Reference:    req.Reference,
		Brand:        req.Brand,
		CollectionID: req.CollectionID,
		SupplierID:   req.SupplierID,
		Movement:     req.Movement,
		CaseMaterial: req.CaseMaterial,
		CaseDiameter: req.CaseDiameter,
		Price:        req.Price,
		Description:  req.Description,
		Featured:     req.Featured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		// fall back to slug lookup for storefront URLs
		product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("id"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Product retrieved successfully", product)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:         req.Name,
		Brand:        req.Brand,
		CollectionID: req.CollectionID,
		SupplierID:   req.SupplierID,
		Movement:     req.Movement,
		CaseMaterial: req.CaseMaterial,
		CaseDiameter: req.CaseDiameter,
		Price:        req.Price,
		Description:  req.Description,
		Featured:     req.Featured,
		Active:       req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing products with filters
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
		Brand:      filter.Brand,
		Featured:   filter.Featured,
		ActiveOnly: filter.ActiveOnly,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}
	params.Pagination.Validate()

	if filter.CollectionID != "" {
		if collectionID, err := uuid.Parse(filter.CollectionID); err == nil {
			params.CollectionID = &collectionID
		}
	}
	if filter.SupplierID != "" {
		if supplierID, err := uuid.Parse(filter.SupplierID); err == nil {
			params.SupplierID = &supplierID
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}
