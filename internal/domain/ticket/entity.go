// internal/domain/ticket/entity.go
package ticket

import (
	"strings"
	"time"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return st, nil
	default:
		return "", xerrors.Newf(xerrors.ErrInvalidInput, "unknown ticket status %q", s)
	}
}

type SupportTicket struct {
	ID              uuid.UUID `json:"id" db:"id"`
	CustomerID      uuid.UUID `json:"customer_id" db:"customer_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Status          Status    `json:"status" db:"status"`
	AssignedStaffID *string   `json:"assigned_staff_id,omitempty" db:"assigned_staff_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

func (t *SupportTicket) Assignee() string {
	if t.AssignedStaffID == nil {
		return ""
	}
	return strings.TrimSpace(*t.AssignedStaffID)
}

// Open builds a new unassigned OPEN ticket.
func Open(customerID uuid.UUID, title, description string, now time.Time) SupportTicket {
	return SupportTicket{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Revise applies the non-nil fields unless the ticket is resolved.
func Revise(t SupportTicket, title, description *string) (SupportTicket, error) {
	if t.Status == StatusResolved {
		return t, xerrors.New(xerrors.ErrIllegalState, "resolved tickets cannot be edited")
	}
	if title != nil {
		t.Title = *title
	}
	if description != nil {
		t.Description = *description
	}
	return t, nil
}

// Assign sets the assignee once; a ticket is never reassigned.
func Assign(t SupportTicket, assigneeID string) (SupportTicket, error) {
	if t.Assignee() != "" {
		return t, xerrors.New(xerrors.ErrConflict, "ticket already assigned")
	}
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		return t, xerrors.New(xerrors.ErrInvalidInput, "assignee id is required to allocate a ticket")
	}
	t.AssignedStaffID = &assigneeID
	return t, nil
}

// ChangeStatus is allowed only for the assigned staff member.
func ChangeStatus(t SupportTicket, status Status, actionedBy string) (SupportTicket, error) {
	assignee := t.Assignee()
	if assignee == "" {
		return t, xerrors.New(xerrors.ErrIllegalState, "ticket is not assigned to any staff")
	}
	if assignee != strings.TrimSpace(actionedBy) {
		return t, xerrors.New(xerrors.ErrForbidden, "only the assigned staff member may update status")
	}
	t.Status = status
	return t, nil
}
