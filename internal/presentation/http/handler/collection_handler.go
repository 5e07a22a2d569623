package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
)

// CollectionHandler handles collection HTTP requests
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// Create handles collection creation
func (h *CollectionHandler) Create(c *gin.Context) {
	var req request.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), &service.CreateCollectionInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Collection created successfully", collection)
}

// Get handles retrieving a single collection
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.collectionService.GetCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection retrieved successfully", collection)
}

// Update handles collection updates
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	var req request.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	collection, err := h.collectionService.UpdateCollection(c.Request.Context(), id, &service.UpdateCollectionInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection updated successfully", collection)
}

// Delete handles collection deletion
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing collections
func (h *CollectionHandler) List(c *gin.Context) {
	params := PaginationFromQuery(c)
	search := c.Query("search")

	result, err := h.collectionService.ListCollections(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Collections retrieved successfully", result)
}
