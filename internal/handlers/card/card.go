// internal/handlers/card/card.go
package card

import (
	"net/http"

	"bankops-service/internal/domain/card"
	"bankops-service/internal/pkg/response"
	service "bankops-service/internal/service/card"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService *service.CardService
}

func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var req card.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.cardService.CreateCard(c.Request.Context(), req.IdentificationNo, req.Password, req.PinNumber)
	if err != nil {
		response.FromError(c, "failed to create card", err)
		return
	}

	response.Success(c, http.StatusCreated, "card created successfully", result)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	var req card.GetCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.cardService.GetCard(c.Request.Context(), req.IdentificationNo, req.Password)
	if err != nil {
		response.FromError(c, "failed to retrieve card", err)
		return
	}

	response.Success(c, http.StatusOK, "card retrieved", result)
}

func (h *CardHandler) UpdatePin(c *gin.Context) {
	var req card.UpdatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.cardService.UpdateCardPin(c.Request.Context(), req.IdentificationNo, req.Password, req.CurrentPin, req.NewPin)
	if err != nil {
		response.FromError(c, "failed to update card PIN", err)
		return
	}

	response.Success(c, http.StatusOK, "card PIN updated", result)
}

func (h *CardHandler) UpdateLimit(c *gin.Context) {
	var req card.UpdateLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.cardService.UpdateCardTransactionLimit(c.Request.Context(), req.IdentificationNo, req.Password, req.PinNumber, req.NewLimit)
	if err != nil {
		response.FromError(c, "failed to update card transaction limit", err)
		return
	}

	response.Success(c, http.StatusOK, "card transaction limit updated", result)
}

func (h *CardHandler) UpdateStatus(c *gin.Context) {
	var req card.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.cardService.UpdateCardStatus(c.Request.Context(), req.IdentificationNo, req.Password, req.PinNumber, card.Action(req.Action))
	if err != nil {
		response.FromError(c, "failed to update card status", err)
		return
	}

	response.Success(c, http.StatusOK, "card status updated", result)
}
