package postgres

import (
	"errors"
	"fmt"
	"testing"

	xerrors "bankops-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	if mapError(nil, "card") != nil {
		t.Fatalf("expected nil for nil error")
	}

	if err := mapError(pgx.ErrNoRows, "card"); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "customers_identification_no_key"}
	if err := mapError(fmt.Errorf("insert: %w", dup), "customer"); !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	other := &pgconn.PgError{Code: "40001"}
	err := mapError(other, "deposit account")
	if errors.Is(err, xerrors.ErrConflict) || errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("serialization failure must not map to a business kind: %v", err)
	}
	if !errors.As(err, new(*pgconn.PgError)) {
		t.Fatalf("expected driver error to stay wrapped")
	}
}
