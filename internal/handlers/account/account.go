// internal/handlers/account/account.go
package account

import (
	"net/http"

	"bankops-service/internal/domain/account"
	"bankops-service/internal/pkg/response"
	service "bankops-service/internal/service/account"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req account.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.CreateAccount(c.Request.Context(), req.IdentificationNo, req.Password, *req.Amount)
	if err != nil {
		response.FromError(c, "failed to create deposit account", err)
		return
	}

	response.Success(c, http.StatusCreated, "deposit account created successfully", result)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	var req account.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.GetAccount(c.Request.Context(), c.Param("idNo"), req.Password)
	if err != nil {
		response.FromError(c, "failed to retrieve deposit account", err)
		return
	}

	response.Success(c, http.StatusOK, "deposit account retrieved", result)
}

func (h *AccountHandler) CloseAccount(c *gin.Context) {
	var req account.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.CloseAccount(c.Request.Context(), c.Param("idNo"), req.Password)
	if err != nil {
		response.FromError(c, "failed to close deposit account", err)
		return
	}

	response.Success(c, http.StatusOK, "deposit account closed", result)
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	var req account.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.DepositFunds(c.Request.Context(), req.IdentificationNo, req.Password, *req.Amount)
	if err != nil {
		response.FromError(c, "failed to deposit funds", err)
		return
	}

	response.Success(c, http.StatusOK, "funds deposited successfully", result)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req account.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.WithdrawFunds(c.Request.Context(), req.IdentificationNo, req.Password, *req.Amount)
	if err != nil {
		response.FromError(c, "failed to withdraw funds", err)
		return
	}

	response.Success(c, http.StatusOK, "funds withdrawn successfully", result)
}

// UpdateStatus freezes or unfreezes an account
func (h *AccountHandler) UpdateStatus(c *gin.Context) {
	var req account.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.accountService.UpdateStatus(c.Request.Context(), req.IdentificationNo, req.Password, account.Action(req.Action))
	if err != nil {
		response.FromError(c, "failed to update deposit account status", err)
		return
	}

	response.Success(c, http.StatusOK, "deposit account status updated", result)
}
