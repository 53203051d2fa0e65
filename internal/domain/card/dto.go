// internal/domain/card/dto.go
package card

type CreateCardRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	PinNumber        string `json:"pin_number" binding:"required"`
}

type GetCardRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
}

type UpdatePinRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	CurrentPin       string `json:"current_pin" binding:"required"`
	NewPin           string `json:"new_pin" binding:"required"`
}

type UpdateLimitRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	PinNumber        string `json:"pin_number" binding:"required"`
	NewLimit         int    `json:"new_limit" binding:"required"`
}

type UpdateStatusRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	PinNumber        string `json:"pin_number" binding:"required"`
	Action           string `json:"action" binding:"required"`
}
