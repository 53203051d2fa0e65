package ticket

import (
	"errors"
	"testing"
	"time"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

func TestAssignIsSingleShot(t *testing.T) {
	tk := Open(uuid.New(), "card blocked", "my card was blocked", time.Now())

	if _, err := Assign(tk, "   "); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected blank assignee to fail, got %v", err)
	}

	assigned, err := Assign(tk, "staff-1")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.Assignee() != "staff-1" {
		t.Fatalf("unexpected assignee %q", assigned.Assignee())
	}
	if _, err := Assign(assigned, "staff-2"); !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected reassignment to fail, got %v", err)
	}
}

func TestChangeStatusRequiresAssignee(t *testing.T) {
	tk := Open(uuid.New(), "t", "d", time.Now())

	if _, err := ChangeStatus(tk, StatusInProgress, "staff-1"); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected unassigned ticket to fail, got %v", err)
	}

	tk, _ = Assign(tk, "staff-1")
	if _, err := ChangeStatus(tk, StatusInProgress, "staff-2"); !errors.Is(err, xerrors.ErrForbidden) {
		t.Fatalf("expected other staff to be forbidden, got %v", err)
	}
	got, err := ChangeStatus(tk, StatusResolved, "staff-1")
	if err != nil || got.Status != StatusResolved {
		t.Fatalf("change status: status=%s err=%v", got.Status, err)
	}
}

func TestReviseRejectsResolved(t *testing.T) {
	tk := Open(uuid.New(), "old", "old body", time.Now())
	title := "new"

	revised, err := Revise(tk, &title, nil)
	if err != nil {
		t.Fatalf("revise: %v", err)
	}
	if revised.Title != "new" || revised.Description != "old body" {
		t.Fatalf("unexpected ticket %+v", revised)
	}

	revised.Status = StatusResolved
	if _, err := Revise(revised, &title, nil); !errors.Is(err, xerrors.ErrIllegalState) {
		t.Fatalf("expected resolved ticket to be read-only, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("in_progress"); err != nil || s != StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %q err=%v", s, err)
	}
	if _, err := ParseStatus("DONE"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
