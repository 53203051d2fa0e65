// internal/domain/ticket/dto.go
package ticket

type CreateTicketRequest struct {
	IdentificationNo string `json:"identification_no" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Subject          string `json:"subject" binding:"required,max=255"`
	Message          string `json:"message" binding:"required"`
}

type UpdateDetailsRequest struct {
	TicketID string  `json:"ticket_id" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Subject  *string `json:"subject" binding:"omitempty,max=255"`
	Message  *string `json:"message"`
}

type AssignRequest struct {
	TicketID   string `json:"ticket_id" binding:"required"`
	AssigneeID string `json:"assignee_id"`
}

type UpdateStatusRequest struct {
	TicketID   string `json:"ticket_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	ActionedBy string `json:"actioned_by" binding:"required"`
}
