package customer

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	xerrors "bankops-service/internal/pkg/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"ACTIVE", StatusActive},
		{"inactive", StatusInactive},
		{" Suspended ", StatusSuspended},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, %v", tt.in, got, err)
		}
	}

	if _, err := ParseStatus("DORMANT"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestIsActiveIgnoresCase(t *testing.T) {
	if !Status("Active").IsActive() {
		t.Fatalf("expected mixed-case ACTIVE to count as active")
	}
	if StatusSuspended.IsActive() {
		t.Fatalf("suspended is not active")
	}
}

func TestCustomerJSONHidesDigest(t *testing.T) {
	c := Customer{IdentificationNo: "ID001", PasswordHash: "$2a$10$secret"}

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("digest leaked: %s", raw)
	}
}
