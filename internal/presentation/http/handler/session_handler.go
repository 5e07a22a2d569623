package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
)

// SessionHandler handles cash register and session HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateRegister handles cash register creation
func (h *SessionHandler) CreateRegister(c *gin.Context) {
	var req request.CreateRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	register, err := h.sessionService.CreateRegister(c.Request.Context(), req.StoreID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash register created successfully", register)
}

// ListRegisters handles listing a store's registers
func (h *SessionHandler) ListRegisters(c *gin.Context) {
	storeID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	registers, err := h.sessionService.ListRegisters(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash registers retrieved successfully", registers)
}

// Open handles opening a session on a register
func (h *SessionHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), req.CashRegisterID, *userID, req.OpeningAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session opened successfully", session)
}

// Close handles closing a session with a counted amount
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.sessionService.CloseSession(c.Request.Context(), id, req.ClosingAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session closed successfully", session)
}

// Get handles retrieving a single session
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session retrieved successfully", session)
}

// GetOpenByRegister handles retrieving a register's current open session
func (h *SessionHandler) GetOpenByRegister(c *gin.Context) {
	registerID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid register ID")
		return
	}

	session, err := h.sessionService.GetOpenSession(c.Request.Context(), registerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Open session retrieved successfully", session)
}

// ListOpen handles listing every open session
func (h *SessionHandler) ListOpen(c *gin.Context) {
	sessions, err := h.sessionService.ListOpenSessions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Open sessions retrieved successfully", sessions)
}

// ListClosed handles listing closed sessions with filters
func (h *SessionHandler) ListClosed(c *gin.Context) {
	params := &repository.SessionFilterParams{
		Pagination:     PaginationFromQuery(c),
		CashRegisterID: ParseUUIDQuery(c, "cash_register_id"),
		OpenedBy:       ParseUUIDQuery(c, "opened_by"),
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

	result, err := h.sessionService.ListClosedSessions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Closed sessions retrieved successfully", result)
}
