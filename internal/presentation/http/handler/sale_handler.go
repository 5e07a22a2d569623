package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
)

// SaleHandler handles point-of-sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles posting a sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, service.SaleItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
		})
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), &service.RecordSaleInput{
		CashSessionID: req.CashSessionID,
		CustomerID:    req.CustomerID,
		Items:         items,
		Discount:      req.Discount,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		CreatedBy:     *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles retrieving a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Pagination:    PaginationFromQuery(c),
		StoreID:       ParseUUIDQuery(c, "store_id"),
		CashSessionID: ParseUUIDQuery(c, "cash_session_id"),
		CustomerID:    ParseUUIDQuery(c, "customer_id"),
		CreatedBy:     ParseUUIDQuery(c, "created_by"),
	}

	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			params.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			params.To = &to
		}
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}
