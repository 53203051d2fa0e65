// internal/domain/account/dto.go
package account

import "github.com/shopspring/decimal"

type CreateAccountRequest struct {
	IdentificationNo string           `json:"identification_no" binding:"required"`
	Password         string           `json:"password" binding:"required"`
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
}

type CredentialsRequest struct {
	Password string `json:"password" binding:"required"`
}

type FundsRequest struct {
	IdentificationNo string           `json:"identification_no" binding:"required"`
	Password         string           `json:"password" binding:"required"`
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateStatusRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Action           string `json:"action" binding:"required"`
}
