package support

import (
	"context"
	"errors"
	"testing"

	"bankops-service/internal/domain/customer"
	"bankops-service/internal/domain/ticket"
	xerrors "bankops-service/internal/pkg/errors"
	"bankops-service/internal/pkg/password"
	"bankops-service/internal/repository/memory"
	customersvc "bankops-service/internal/service/customer"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testID       = "ID001"
	testPassword = "Passw0rd"
)

func newTestService(t *testing.T) *SupportService {
	t.Helper()
	store := memory.NewStore()
	logger := zap.NewNop()

	customers := customersvc.NewCustomerService(store.Customers(), store, password.NewBcryptHasher(bcrypt.MinCost), nil, logger)
	if _, err := customers.CreateProfile(context.Background(), &customer.CreateCustomerRequest{
		Name:             "Jane Doe",
		IdentificationNo: testID,
		PhoneNo:          "0700000001",
		Address:          "1 Main St",
		Password:         testPassword,
	}); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	return NewSupportService(store.Tickets(), customers, store, logger)
}

func openTicket(t *testing.T, svc *SupportService) *ticket.SupportTicket {
	t.Helper()
	tk, err := svc.OpenTicket(context.Background(), testID, testPassword, "Card declined", "My card was declined at the till")
	if err != nil {
		t.Fatalf("OpenTicket: %v", err)
	}
	return tk
}

func TestOpenTicket(t *testing.T) {
	svc := newTestService(t)

	tk := openTicket(t, svc)
	if tk.Status != ticket.StatusOpen || tk.AssignedStaffID != nil {
		t.Fatalf("expected unassigned OPEN ticket, got %+v", tk)
	}

	if _, err := svc.OpenTicket(context.Background(), testID, "wrong-pass1", "s", "m"); !errors.Is(err, xerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAssignmentAndStatusScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tk := openTicket(t, svc)

	if _, err := svc.ChangeTicketStatus(ctx, tk.ID, ticket.StatusInProgress, "staff-1"); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("unassigned: expected illegal state, got %v", err)
	}

	assigned, err := svc.AllocateTicket(ctx, tk.ID, "staff-1")
	if err != nil {
		t.Fatalf("AllocateTicket: %v", err)
	}
	if assigned.Assignee() != "staff-1" {
		t.Fatalf("expected staff-1, got %q", assigned.Assignee())
	}

	if _, err := svc.AllocateTicket(ctx, tk.ID, "staff-2"); !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("reassign: expected conflict, got %v", err)
	}
	if _, err := svc.ChangeTicketStatus(ctx, tk.ID, ticket.StatusInProgress, "staff-2"); !errors.Is(err, xerrors.ErrForbidden) {
		t.Fatalf("other staff: expected forbidden, got %v", err)
	}

	updated, err := svc.ChangeTicketStatus(ctx, tk.ID, ticket.StatusInProgress, "staff-1")
	if err != nil {
		t.Fatalf("ChangeTicketStatus: %v", err)
	}
	if updated.Status != ticket.StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", updated.Status)
	}
}

func TestAllocateTicketRejectsBlankAssignee(t *testing.T) {
	svc := newTestService(t)
	tk := openTicket(t, svc)

	if _, err := svc.AllocateTicket(context.Background(), tk.ID, "   "); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.AllocateTicket(context.Background(), uuid.New(), "staff-1"); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReviseTicketDetails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tk := openTicket(t, svc)

	subject := "Card still declined"
	revised, err := svc.ReviseTicketDetails(ctx, tk.ID, testPassword, &subject, nil)
	if err != nil {
		t.Fatalf("ReviseTicketDetails: %v", err)
	}
	if revised.Title != subject || revised.Description != tk.Description {
		t.Fatalf("only the subject should change, got %+v", revised)
	}

	if _, err := svc.ReviseTicketDetails(ctx, tk.ID, "wrong-pass1", &subject, nil); !errors.Is(err, xerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.ReviseTicketDetails(ctx, uuid.New(), testPassword, &subject, nil); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := svc.AllocateTicket(ctx, tk.ID, "staff-1"); err != nil {
		t.Fatalf("AllocateTicket: %v", err)
	}
	if _, err := svc.ChangeTicketStatus(ctx, tk.ID, ticket.StatusResolved, "staff-1"); err != nil {
		t.Fatalf("ChangeTicketStatus: %v", err)
	}
	if _, err := svc.ReviseTicketDetails(ctx, tk.ID, testPassword, &subject, nil); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("resolved: expected illegal state, got %v", err)
	}
}
