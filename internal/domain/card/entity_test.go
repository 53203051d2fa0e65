package card

import (
	"errors"
	"testing"
	"time"

	"bankops-service/internal/domain/account"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func activeAccount() account.DepositAccount {
	a, _ := account.Open(uuid.New(), decimal.NewFromInt(100), time.Now())
	return a
}

func cardWithStatus(s Status) Card {
	c, _ := Issue(activeAccount(), "123456", "4000123412341234", time.Now())
	c.Status = s
	return c
}

func TestGenerateNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		n, err := GenerateNumber()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(n) != NumberLength {
			t.Fatalf("expected %d digits, got %q", NumberLength, n)
		}
		for _, r := range n {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in %q", n)
			}
		}
	}
}

func TestIssue(t *testing.T) {
	acct := activeAccount()
	c, err := Issue(acct, "123456", "4000123412341234", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if c.Status != StatusInactive || c.TransactionLimit != DefaultTransactionLimit || c.AccountID != acct.ID {
		t.Fatalf("unexpected card %+v", c)
	}

	if _, err := Issue(acct, "12345a", "4000123412341234", time.Now()); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid pin, got %v", err)
	}
	acct.Status = account.StatusFrozen
	if _, err := Issue(acct, "123456", "4000123412341234", time.Now()); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected illegal state for frozen account, got %v", err)
	}
}

func TestResync(t *testing.T) {
	cases := []struct {
		card    Status
		account account.Status
		want    Status
		changed bool
	}{
		{StatusActive, account.StatusActive, StatusActive, false},
		{StatusActive, account.StatusFrozen, StatusFrozen, true},
		{StatusInactive, account.StatusFrozen, StatusFrozen, true},
		{StatusFrozen, account.StatusFrozen, StatusFrozen, false},
		{StatusActive, account.StatusClosed, StatusInactive, true},
		{StatusFrozen, account.StatusClosed, StatusInactive, true},
		{StatusInactive, account.StatusClosed, StatusInactive, false},
		{StatusFrozen, account.StatusActive, StatusFrozen, false},
	}

	for _, tc := range cases {
		got, changed := Resync(cardWithStatus(tc.card), tc.account)
		if got.Status != tc.want || changed != tc.changed {
			t.Errorf("Resync(%s, %s) = (%s, %v), want (%s, %v)",
				tc.card, tc.account, got.Status, changed, tc.want, tc.changed)
		}
	}
}

func TestApplyActionTable(t *testing.T) {
	cases := []struct {
		name    string
		card    Status
		account account.Status
		action  Action
		want    Status
		wantErr error
	}{
		{"activate inactive", StatusInactive, account.StatusActive, ActionActivate, StatusActive, nil},
		{"activate with frozen account", StatusInactive, account.StatusFrozen, ActionActivate, "", xerrors.ErrIllegalState},
		{"activate active", StatusActive, account.StatusActive, ActionActivate, "", xerrors.ErrIllegalState},
		{"activate frozen", StatusFrozen, account.StatusActive, ActionActivate, "", xerrors.ErrIllegalState},
		{"deactivate active", StatusActive, account.StatusActive, ActionDeactivate, StatusInactive, nil},
		{"deactivate inactive", StatusInactive, account.StatusActive, ActionDeactivate, "", xerrors.ErrIllegalState},
		{"deactivate frozen", StatusFrozen, account.StatusActive, ActionDeactivate, "", xerrors.ErrIllegalState},
		{"freeze active", StatusActive, account.StatusActive, ActionFreeze, StatusFrozen, nil},
		{"freeze frozen", StatusFrozen, account.StatusActive, ActionFreeze, "", xerrors.ErrIllegalState},
		{"freeze inactive", StatusInactive, account.StatusActive, ActionFreeze, "", xerrors.ErrIllegalState},
		{"unfreeze frozen", StatusFrozen, account.StatusActive, ActionUnfreeze, StatusActive, nil},
		{"unfreeze with frozen account", StatusFrozen, account.StatusFrozen, ActionUnfreeze, "", xerrors.ErrIllegalState},
		{"unfreeze active", StatusActive, account.StatusActive, ActionUnfreeze, "", xerrors.ErrIllegalState},
		{"unknown action", StatusActive, account.StatusActive, Action("EXPLODE"), "", xerrors.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyAction(cardWithStatus(tc.card), tc.account, tc.action)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if got.Status != tc.card {
					t.Fatalf("status changed on failure: %s", got.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Status)
			}
		})
	}
}

func TestChangePinAndLimit(t *testing.T) {
	inactive := cardWithStatus(StatusInactive)
	if _, err := ChangePin(inactive, "123456", "654321"); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected illegal state for inactive card, got %v", err)
	}

	active := cardWithStatus(StatusActive)
	if _, err := ChangePin(active, "000000", "654321"); !errors.Is(err, xerrors.ErrUnauthorized) {
		t.Fatalf("expected wrong pin to fail, got %v", err)
	}
	if _, err := ChangePin(active, "123456", "65432"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected malformed new pin to fail, got %v", err)
	}
	changed, err := ChangePin(active, "123456", "654321")
	if err != nil || changed.PinNumber != "654321" {
		t.Fatalf("change pin: pin=%s err=%v", changed.PinNumber, err)
	}

	for _, limit := range []int{MinTransactionLimit, 0, -1, MaxTransactionLimit + 1} {
		if _, err := ChangeLimit(inactive, "123456", limit); !errors.Is(err, xerrors.ErrInvalidInput) {
			t.Fatalf("expected limit %d to be rejected, got %v", limit, err)
		}
	}
	for _, limit := range []int{MinTransactionLimit + 1, MaxTransactionLimit} {
		got, err := ChangeLimit(inactive, "123456", limit)
		if err != nil || got.TransactionLimit != limit {
			t.Fatalf("limit %d: got %d err=%v", limit, got.TransactionLimit, err)
		}
	}
	if _, err := ChangeLimit(inactive, "111111", 2000); !errors.Is(err, xerrors.ErrUnauthorized) {
		t.Fatalf("expected wrong pin to fail, got %v", err)
	}
}

func TestMaskedNumber(t *testing.T) {
	c := Card{CardNumber: "4000123412345678"}
	if got := c.MaskedNumber(); got != "************5678" {
		t.Fatalf("unexpected mask %q", got)
	}
}
