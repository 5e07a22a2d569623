package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
)

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles enrolling a product at a store
func (h *StockHandler) Create(c *gin.Context) {
	var req request.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.CreateRecord(c.Request.Context(), &service.CreateStockInput{
		ProductID:    req.ProductID,
		StoreID:      req.StoreID,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock record created successfully", record)
}

// Get handles retrieving a single stock record
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid stock record ID")
		return
	}

	record, err := h.stockService.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock record retrieved successfully", record)
}

// Add handles a stock entry
func (h *StockHandler) Add(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid stock record ID")
		return
	}

	var req request.StockAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.AddStock(c.Request.Context(), id, req.Amount, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock added successfully", record)
}

// Remove handles a stock withdrawal
func (h *StockHandler) Remove(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid stock record ID")
		return
	}

	var req request.StockAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.stockService.RemoveStock(c.Request.Context(), id, req.Amount, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock removed successfully", record)
}

// Transfer handles moving stock between stores
func (h *StockHandler) Transfer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.stockService.Transfer(c.Request.Context(), req.FromStoreID, req.ToStoreID, req.ProductID, req.Quantity, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock transferred successfully", result)
}

// List handles listing stock records across stores
func (h *StockHandler) List(c *gin.Context) {
	params := &repository.StockFilterParams{
		Pagination:   PaginationFromQuery(c),
		ProductID:    ParseUUIDQuery(c, "product_id"),
		StoreID:      ParseUUIDQuery(c, "store_id"),
		BelowMinimum: c.Query("below_minimum") == "true",
	}

	result, err := h.stockService.ListAll(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock records retrieved successfully", result)
}

// ListByStore handles listing one store's stock
func (h *StockHandler) ListByStore(c *gin.Context) {
	storeID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	params := PaginationFromQuery(c)

	result, err := h.stockService.ListByStore(c.Request.Context(), storeID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock records retrieved successfully", result)
}

// Alerts handles listing records at or below their reorder threshold
func (h *StockHandler) Alerts(c *gin.Context) {
	storeID := ParseUUIDQuery(c, "store_id")

	records, err := h.stockService.ListBelowMinimum(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock records retrieved successfully", records)
}

// Movements handles listing a record's audit trail
func (h *StockHandler) Movements(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid stock record ID")
		return
	}

	params := PaginationFromQuery(c)

	result, err := h.stockService.ListMovements(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}
