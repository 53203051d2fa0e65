// internal/domain/customer/dto.go
package customer

type CreateCustomerRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	IdentificationNo string `json:"identification_no" binding:"required,max=64"`
	PhoneNo          string `json:"phone_no" binding:"required,max=20"`
	Address          string `json:"address" binding:"required,max=512"`
	Password         string `json:"password" binding:"required"`
}

// UpdateCustomerRequest applies only the non-nil fields.
type UpdateCustomerRequest struct {
	CurrentPassword  string  `json:"current_password" binding:"required"`
	Name             *string `json:"name" binding:"omitempty,max=255"`
	IdentificationNo *string `json:"identification_no" binding:"omitempty,max=64"`
	PhoneNo          *string `json:"phone_no" binding:"omitempty,max=20"`
	Address          *string `json:"address" binding:"omitempty,max=512"`
	Status           *string `json:"status"`
	NewPassword      *string `json:"new_password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
