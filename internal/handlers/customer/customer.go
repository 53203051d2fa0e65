// internal/handlers/customer/customer.go
package customer

import (
	"net/http"

	"bankops-service/internal/domain/customer"
	"bankops-service/internal/pkg/response"
	service "bankops-service/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer registers a new customer
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.customerService.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create customer", err)
		return
	}

	response.Success(c, http.StatusCreated, "customer created successfully", result)
}

// GetCustomer retrieves a customer by identification number
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.customerService.GetProfile(c.Request.Context(), c.Param("idNo"))
	if err != nil {
		response.FromError(c, "customer not found", err)
		return
	}

	response.Success(c, http.StatusOK, "customer retrieved", result)
}

// UpdateCustomer applies a partial profile update
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.customerService.UpdateProfile(c.Request.Context(), c.Param("idNo"), &req)
	if err != nil {
		response.FromError(c, "failed to update customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer updated successfully", result)
}

// UpdateStatus overwrites a customer's status
func (h *CustomerHandler) UpdateStatus(c *gin.Context) {
	var req customer.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	status, err := customer.ParseStatus(req.Status)
	if err != nil {
		response.ValidationError(c, "invalid status", err)
		return
	}

	updated, err := h.customerService.UpdateStatus(c.Request.Context(), c.Param("idNo"), status)
	if err != nil {
		response.FromError(c, "failed to update customer status", err)
		return
	}
	if !updated {
		response.NotFound(c, "customer not found")
		return
	}

	response.Success(c, http.StatusOK, "customer status updated", gin.H{"status": status})
}
