// internal/handlers/support/support.go
package support

import (
	"net/http"

	"bankops-service/internal/domain/ticket"
	"bankops-service/internal/pkg/response"
	service "bankops-service/internal/service/support"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SupportHandler struct {
	supportService *service.SupportService
}

func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

func (h *SupportHandler) OpenTicket(c *gin.Context) {
	var req ticket.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.supportService.OpenTicket(c.Request.Context(), req.IdentificationNo, req.Password, req.Subject, req.Message)
	if err != nil {
		response.FromError(c, "failed to open support ticket", err)
		return
	}

	response.Success(c, http.StatusCreated, "support ticket opened", result)
}

func (h *SupportHandler) ReviseDetails(c *gin.Context) {
	var req ticket.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	ticketID, ok := parseTicketID(c, req.TicketID)
	if !ok {
		return
	}

	result, err := h.supportService.ReviseTicketDetails(c.Request.Context(), ticketID, req.Password, req.Subject, req.Message)
	if err != nil {
		response.FromError(c, "failed to update support ticket", err)
		return
	}

	response.Success(c, http.StatusOK, "support ticket updated", result)
}

func (h *SupportHandler) AllocateTicket(c *gin.Context) {
	var req ticket.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	ticketID, ok := parseTicketID(c, req.TicketID)
	if !ok {
		return
	}

	result, err := h.supportService.AllocateTicket(c.Request.Context(), ticketID, req.AssigneeID)
	if err != nil {
		response.FromError(c, "failed to allocate support ticket", err)
		return
	}

	response.Success(c, http.StatusOK, "support ticket allocated", result)
}

func (h *SupportHandler) ChangeStatus(c *gin.Context) {
	var req ticket.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	status, err := ticket.ParseStatus(req.Status)
	if err != nil {
		response.ValidationError(c, "invalid status", err)
		return
	}

	ticketID, ok := parseTicketID(c, req.TicketID)
	if !ok {
		return
	}

	result, err := h.supportService.ChangeTicketStatus(c.Request.Context(), ticketID, status, req.ActionedBy)
	if err != nil {
		response.FromError(c, "failed to change support ticket status", err)
		return
	}

	response.Success(c, http.StatusOK, "support ticket status updated", result)
}

func parseTicketID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		response.ValidationError(c, "invalid ticket id", err)
		return uuid.Nil, false
	}
	return id, true
}
