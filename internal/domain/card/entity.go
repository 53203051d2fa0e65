// internal/domain/card/entity.go
package card

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"bankops-service/internal/domain/account"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusFrozen   Status = "FROZEN"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive, StatusFrozen:
		return st, nil
	default:
		return "", xerrors.Newf(xerrors.ErrInvalidInput, "unknown card status %q", s)
	}
}

type Action string

const (
	ActionActivate   Action = "ACTIVATE"
	ActionDeactivate Action = "DEACTIVATE"
	ActionFreeze     Action = "FREEZE"
	ActionUnfreeze   Action = "UNFREEZE"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActionActivate, ActionDeactivate, ActionFreeze, ActionUnfreeze:
		return a, nil
	default:
		return "", xerrors.Newf(xerrors.ErrInvalidInput, "invalid card action %q", s)
	}
}

// Transaction limit bounds. A new limit must satisfy MinTransactionLimit < limit <= MaxTransactionLimit.
const (
	DefaultTransactionLimit = 5000
	MinTransactionLimit     = 100
	MaxTransactionLimit     = 10000

	NumberLength = 16
)

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// Card is the debit card linked to a deposit account.
type Card struct {
	ID               uuid.UUID `json:"id" db:"id"`
	AccountID        uuid.UUID `json:"account_id" db:"account_id"`
	CardNumber       string    `json:"card_number" db:"card_number"`
	PinNumber        string    `json:"-" db:"pin_number"`
	TransactionLimit int       `json:"transaction_limit" db:"transaction_limit"`
	Status           Status    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"-" db:"updated_at"`
}

// View is the card as returned to its owner.
type View struct {
	ID               uuid.UUID `json:"id"`
	AccountID        uuid.UUID `json:"account_id"`
	CardNumber       string    `json:"card_number"`
	TransactionLimit int       `json:"transaction_limit"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *Card) View() *View {
	return &View{
		ID:               c.ID,
		AccountID:        c.AccountID,
		CardNumber:       c.CardNumber,
		TransactionLimit: c.TransactionLimit,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}
}

// MaskedNumber keeps only the last four digits, for logs.
func (c *Card) MaskedNumber() string {
	n := len(c.CardNumber)
	if n <= 4 {
		return c.CardNumber
	}
	return strings.Repeat("*", n-4) + c.CardNumber[n-4:]
}

func ValidPin(pin string) bool {
	return pinPattern.MatchString(pin)
}

// GenerateNumber returns a random 16-digit numeric card number.
func GenerateNumber() (string, error) {
	var sb strings.Builder
	sb.Grow(NumberLength)
	ten := big.NewInt(10)
	for sb.Len() < NumberLength {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate card number: %w", err)
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}
	return sb.String(), nil
}

// Issue builds a new INACTIVE card for an ACTIVE account.
func Issue(acct account.DepositAccount, pin, number string, now time.Time) (Card, error) {
	if acct.Status != account.StatusActive {
		return Card{}, xerrors.New(xerrors.ErrIllegalState, "deposit account must be ACTIVE to create a card")
	}
	if !ValidPin(pin) {
		return Card{}, xerrors.New(xerrors.ErrInvalidInput, "PIN number must be a 6-digit numeric string")
	}
	return Card{
		ID:               uuid.New(),
		AccountID:        acct.ID,
		CardNumber:       number,
		PinNumber:        pin,
		TransactionLimit: DefaultTransactionLimit,
		Status:           StatusInactive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Resync forces the card status to follow its account: a FROZEN account
// freezes the card, a CLOSED account deactivates it. The bool reports
// whether the card changed.
func Resync(c Card, accountStatus account.Status) (Card, bool) {
	switch {
	case accountStatus == account.StatusFrozen && c.Status != StatusFrozen:
		c.Status = StatusFrozen
		return c, true
	case accountStatus == account.StatusClosed && c.Status != StatusInactive:
		c.Status = StatusInactive
		return c, true
	}
	return c, false
}

func CheckPin(c Card, pin string) error {
	if c.PinNumber != pin {
		return xerrors.New(xerrors.ErrUnauthorized, "PIN number is incorrect")
	}
	return nil
}

// ChangePin requires an ACTIVE card and the current PIN.
func ChangePin(c Card, currentPin, newPin string) (Card, error) {
	if c.Status != StatusActive {
		return c, xerrors.New(xerrors.ErrIllegalState, "card is not in ACTIVE status and cannot update PIN")
	}
	if err := CheckPin(c, currentPin); err != nil {
		return c, err
	}
	if !ValidPin(newPin) {
		return c, xerrors.New(xerrors.ErrInvalidInput, "PIN number must be a 6-digit numeric string")
	}
	c.PinNumber = newPin
	return c, nil
}

func ChangeLimit(c Card, pin string, limit int) (Card, error) {
	if err := CheckPin(c, pin); err != nil {
		return c, err
	}
	if limit <= MinTransactionLimit || limit > MaxTransactionLimit {
		return c, xerrors.Newf(xerrors.ErrInvalidInput,
			"transaction limit must be greater than %d and not exceed %d", MinTransactionLimit, MaxTransactionLimit)
	}
	c.TransactionLimit = limit
	return c, nil
}

// ApplyAction runs the card status transition table against the linked
// account's status. Callers resync the card first.
func ApplyAction(c Card, accountStatus account.Status, action Action) (Card, error) {
	current := c.Status

	switch action {
	case ActionActivate:
		if accountStatus != account.StatusActive {
			return c, xerrors.New(xerrors.ErrIllegalState, "card can only be activated if linked deposit account is ACTIVE")
		}
		if current == StatusActive {
			return c, xerrors.New(xerrors.ErrIllegalState, "card is already in ACTIVE status")
		}
		if current == StatusFrozen {
			return c, xerrors.New(xerrors.ErrIllegalState, "card is frozen, unfreeze it instead of activating")
		}
		c.Status = StatusActive

	case ActionDeactivate:
		if current == StatusInactive {
			return c, xerrors.New(xerrors.ErrIllegalState, "card is already in INACTIVE status")
		}
		if current == StatusFrozen {
			return c, xerrors.New(xerrors.ErrIllegalState, "frozen card cannot be deactivated, unfreeze it first")
		}
		c.Status = StatusInactive

	case ActionFreeze:
		if current == StatusFrozen {
			return c, xerrors.New(xerrors.ErrIllegalState, "card is already frozen")
		}
		if current != StatusActive {
			return c, xerrors.New(xerrors.ErrIllegalState, "only ACTIVE cards can be frozen")
		}
		c.Status = StatusFrozen

	case ActionUnfreeze:
		if accountStatus != account.StatusActive {
			return c, xerrors.New(xerrors.ErrIllegalState, "card can only be unfrozen if linked deposit account is ACTIVE")
		}
		if current != StatusFrozen {
			return c, xerrors.New(xerrors.ErrIllegalState, "only FROZEN cards can be unfrozen")
		}
		c.Status = StatusActive

	default:
		return c, xerrors.New(xerrors.ErrInvalidInput, "invalid action for updating card status")
	}

	return c, nil
}
