// internal/domain/customer/entity.go
package customer

import (
	"strings"
	"time"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// ParseStatus accepts any casing of a known status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive, StatusSuspended:
		return st, nil
	default:
		return "", xerrors.Newf(xerrors.ErrInvalidInput, "unknown customer status %q", s)
	}
}

func (s Status) IsActive() bool {
	return strings.EqualFold(string(s), string(StatusActive))
}

type Customer struct {
	ID               uuid.UUID `json:"id" db:"id"`
	IdentificationNo string    `json:"identification_no" db:"identification_no"`
	PhoneNo          string    `json:"phone_no" db:"phone_no"`
	Name             string    `json:"name" db:"name"`
	Address          string    `json:"address" db:"address"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Status           Status    `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the customer view returned to callers; it never carries the digest.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	IdentificationNo string    `json:"identification_no"`
	PhoneNo          string    `json:"phone_no"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Customer) Profile() *Profile {
	return &Profile{
		ID:               c.ID,
		IdentificationNo: c.IdentificationNo,
		PhoneNo:          c.PhoneNo,
		Name:             c.Name,
		Address:          c.Address,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}
}
