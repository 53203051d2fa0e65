// internal/domain/account/entity.go
package account

import (
	"strings"
	"time"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusFrozen Status = "FROZEN"
	StatusClosed Status = "CLOSED"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusActive, StatusFrozen, StatusClosed:
		return st, nil
	default:
		return "", xerrors.Newf(xerrors.ErrInvalidInput, "unknown account status %q", s)
	}
}

// Action is a requested status change on an account.
type Action string

const (
	ActionFreeze   Action = "FREEZE"
	ActionUnfreeze Action = "UNFREEZE"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.TrimSpace(s))); a {
	case ActionFreeze, ActionUnfreeze:
		return a, nil
	default:
		return "", xerrors.New(xerrors.ErrInvalidInput, "action must be either FREEZE or UNFREEZE")
	}
}

// DepositAccount is the single deposit account a customer may hold.
type DepositAccount struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	CustomerID uuid.UUID       `json:"customer_id" db:"customer_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Status     Status          `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"-" db:"updated_at"`
}

// AmountScale is the number of decimal places a balance is stored with.
const AmountScale = 2

func checkScale(amount decimal.Decimal, what string) error {
	if !amount.Equal(amount.Round(AmountScale)) {
		return xerrors.Newf(xerrors.ErrInvalidInput, "%s must not have more than %d decimal places", what, AmountScale)
	}
	return nil
}

// Open builds a new ACTIVE account. The initial amount may be zero or
// negative but must fit the stored scale.
func Open(customerID uuid.UUID, initial decimal.Decimal, now time.Time) (DepositAccount, error) {
	if err := checkScale(initial, "initial amount"); err != nil {
		return DepositAccount{}, err
	}
	return DepositAccount{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     initial,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Deposit returns a with amount added to its balance.
func Deposit(a DepositAccount, amount decimal.Decimal) (DepositAccount, error) {
	if !amount.IsPositive() {
		return a, xerrors.New(xerrors.ErrInvalidInput, "deposit amount must be greater than zero")
	}
	if err := checkScale(amount, "deposit amount"); err != nil {
		return a, err
	}
	if err := ensureFundsMovable(a, "deposits"); err != nil {
		return a, err
	}
	a.Amount = a.Amount.Add(amount)
	return a, nil
}

// Withdraw returns a with amount taken from its balance.
func Withdraw(a DepositAccount, amount decimal.Decimal) (DepositAccount, error) {
	if !amount.IsPositive() {
		return a, xerrors.New(xerrors.ErrInvalidInput, "withdrawal amount must be greater than zero")
	}
	if err := checkScale(amount, "withdrawal amount"); err != nil {
		return a, err
	}
	if err := ensureFundsMovable(a, "withdrawals"); err != nil {
		return a, err
	}
	if a.Amount.LessThan(amount) {
		return a, xerrors.New(xerrors.ErrInsufficientFunds, "available balance insufficient")
	}
	a.Amount = a.Amount.Sub(amount)
	return a, nil
}

func ensureFundsMovable(a DepositAccount, what string) error {
	switch a.Status {
	case StatusClosed:
		return xerrors.Newf(xerrors.ErrIllegalState, "%s not permitted for closed accounts", what)
	case StatusFrozen:
		return xerrors.Newf(xerrors.ErrIllegalState, "%s blocked on frozen accounts", what)
	}
	return nil
}

// Close moves a to CLOSED. CLOSED is terminal.
func Close(a DepositAccount) (DepositAccount, error) {
	if a.Status == StatusClosed {
		return a, xerrors.New(xerrors.ErrConflict, "account has already been closed")
	}
	a.Status = StatusClosed
	return a, nil
}

// ApplyAction flips a between ACTIVE and FROZEN.
func ApplyAction(a DepositAccount, action Action) (DepositAccount, error) {
	if a.Status == StatusClosed {
		return a, xerrors.New(xerrors.ErrIllegalState, "status modification not allowed for closed accounts")
	}
	switch action {
	case ActionFreeze:
		if a.Status == StatusFrozen {
			return a, xerrors.New(xerrors.ErrIllegalState, "account is already frozen")
		}
		a.Status = StatusFrozen
	case ActionUnfreeze:
		if a.Status == StatusActive {
			return a, xerrors.New(xerrors.ErrIllegalState, "account is already active")
		}
		a.Status = StatusActive
	default:
		return a, xerrors.New(xerrors.ErrInvalidInput, "action must be either FREEZE or UNFREEZE")
	}
	return a, nil
}
