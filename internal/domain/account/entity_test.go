package account

import (
	"errors"
	"testing"
	"time"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newAccount(status Status, amount int64) DepositAccount {
	a, _ := Open(uuid.New(), decimal.NewFromInt(amount), time.Now())
	a.Status = status
	return a
}

func TestFundsMovementKeepsStatus(t *testing.T) {
	a := newAccount(StatusActive, 1000)

	deposits := []int64{500, 20, 1}
	withdrawals := []int64{300, 21}
	for _, d := range deposits {
		var err error
		if a, err = Deposit(a, decimal.NewFromInt(d)); err != nil {
			t.Fatalf("deposit %d: %v", d, err)
		}
	}
	for _, w := range withdrawals {
		var err error
		if a, err = Withdraw(a, decimal.NewFromInt(w)); err != nil {
			t.Fatalf("withdraw %d: %v", w, err)
		}
	}

	if !a.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected balance 1200, got %s", a.Amount)
	}
	if a.Status != StatusActive {
		t.Fatalf("expected status unchanged, got %s", a.Status)
	}
}

func TestDepositAndWithdrawGuards(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		op     func(DepositAccount, decimal.Decimal) (DepositAccount, error)
		amount decimal.Decimal
		want   error
	}{
		{"deposit zero", StatusActive, Deposit, decimal.Zero, xerrors.ErrInvalidInput},
		{"deposit negative", StatusActive, Deposit, decimal.NewFromInt(-5), xerrors.ErrInvalidInput},
		{"deposit frozen", StatusFrozen, Deposit, decimal.NewFromInt(100), xerrors.ErrIllegalState},
		{"deposit closed", StatusClosed, Deposit, decimal.NewFromInt(100), xerrors.ErrIllegalState},
		{"withdraw zero", StatusActive, Withdraw, decimal.Zero, xerrors.ErrInvalidInput},
		{"withdraw frozen", StatusFrozen, Withdraw, decimal.NewFromInt(1), xerrors.ErrIllegalState},
		{"withdraw closed", StatusClosed, Withdraw, decimal.NewFromInt(1), xerrors.ErrIllegalState},
		{"withdraw overdraft", StatusActive, Withdraw, decimal.NewFromInt(1001), xerrors.ErrInsufficientFunds},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAccount(tc.status, 1000)
			got, err := tc.op(a, tc.amount)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !got.Amount.Equal(a.Amount) {
				t.Fatalf("balance changed on failure: %s", got.Amount)
			}
		})
	}
}

func TestWithdrawExactBalance(t *testing.T) {
	a, err := Withdraw(newAccount(StatusActive, 250), decimal.NewFromInt(250))
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if !a.Amount.IsZero() {
		t.Fatalf("expected zero balance, got %s", a.Amount)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	a, err := Close(newAccount(StatusFrozen, 10))
	if err != nil {
		t.Fatalf("close frozen account: %v", err)
	}
	if a.Status != StatusClosed {
		t.Fatalf("expected CLOSED, got %s", a.Status)
	}
	if _, err := Close(a); !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected conflict on second close, got %v", err)
	}
	for _, action := range []Action{ActionFreeze, ActionUnfreeze} {
		if _, err := ApplyAction(a, action); !errors.Is(err, xerrors.ErrIllegalState) {
			t.Fatalf("expected %s on closed account to fail, got %v", action, err)
		}
	}
}

func TestApplyAction(t *testing.T) {
	a := newAccount(StatusActive, 0)

	frozen, err := ApplyAction(a, ActionFreeze)
	if err != nil || frozen.Status != StatusFrozen {
		t.Fatalf("freeze: status=%s err=%v", frozen.Status, err)
	}
	if _, err := ApplyAction(frozen, ActionFreeze); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected second freeze to fail, got %v", err)
	}
	active, err := ApplyAction(frozen, ActionUnfreeze)
	if err != nil || active.Status != StatusActive {
		t.Fatalf("unfreeze: status=%s err=%v", active.Status, err)
	}
	if _, err := ApplyAction(active, ActionUnfreeze); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected unfreeze on active account to fail, got %v", err)
	}
}

func TestParseAction(t *testing.T) {
	if a, err := ParseAction(" freeze "); err != nil || a != ActionFreeze {
		t.Fatalf("expected FREEZE, got %q err=%v", a, err)
	}
	if _, err := ParseAction("close"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAmountsMustFitStoredScale(t *testing.T) {
	a := newAccount(StatusActive, 1000)

	if _, err := Deposit(a, decimal.RequireFromString("0.004")); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("sub-cent deposit: expected invalid input, got %v", err)
	}
	if _, err := Withdraw(a, decimal.RequireFromString("0.001")); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("sub-cent withdrawal: expected invalid input, got %v", err)
	}
	if _, err := Open(uuid.New(), decimal.RequireFromString("10.005"), time.Now()); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("sub-cent opening balance: expected invalid input, got %v", err)
	}

	// trailing zeros beyond two places are still whole cents
	got, err := Deposit(a, decimal.RequireFromString("0.100"))
	if err != nil {
		t.Fatalf("deposit 0.100: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("1000.10")) {
		t.Fatalf("expected 1000.10, got %s", got.Amount)
	}
}
