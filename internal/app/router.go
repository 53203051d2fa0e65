// internal/app/router.go
package app

import (
	"net/http"

	accountHandler "bankops-service/internal/handlers/account"
	cardHandler "bankops-service/internal/handlers/card"
	customerHandler "bankops-service/internal/handlers/customer"
	supportHandler "bankops-service/internal/handlers/support"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
	AccountHandler  *accountHandler.AccountHandler
	CardHandler     *cardHandler.CardHandler
	SupportHandler  *supportHandler.SupportHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Customers ====================
	customers := api.Group("/customers")
	{
		customers.POST("/create", h.CustomerHandler.CreateCustomer)
		customers.GET("/:idNo", h.CustomerHandler.GetCustomer)
		customers.PATCH("/update/:idNo", h.CustomerHandler.UpdateCustomer)
		customers.PATCH("/status/:idNo", h.CustomerHandler.UpdateStatus)
	}

	// ==================== Deposit Accounts ====================
	accounts := api.Group("/deposit-accounts")
	{
		accounts.POST("/create", h.AccountHandler.CreateAccount)
		accounts.POST("/get/:idNo", h.AccountHandler.GetAccount)
		accounts.PATCH("/close/:idNo", h.AccountHandler.CloseAccount)
		accounts.POST("/deposit", h.AccountHandler.Deposit)
		accounts.POST("/withdraw", h.AccountHandler.Withdraw)
		accounts.PATCH("/status", h.AccountHandler.UpdateStatus)
	}

	// ==================== Cards ====================
	cards := api.Group("/cards")
	{
		cards.POST("/create", h.CardHandler.CreateCard)
		cards.POST("/get", h.CardHandler.GetCard)
		cards.PATCH("/pin", h.CardHandler.UpdatePin)
		cards.PATCH("/limit", h.CardHandler.UpdateLimit)
		cards.PATCH("/status", h.CardHandler.UpdateStatus)
	}

	// ==================== Customer Support ====================
	tickets := api.Group("/customer-support/tickets")
	{
		tickets.POST("", h.SupportHandler.OpenTicket)
		tickets.PATCH("/details", h.SupportHandler.ReviseDetails)
		tickets.PATCH("/assignee", h.SupportHandler.AllocateTicket)
		tickets.PATCH("/status", h.SupportHandler.ChangeStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		logger.Debug("route not found", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})
}
