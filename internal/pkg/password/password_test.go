package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestIsAcceptable(t *testing.T) {
	cases := map[string]bool{
		"Passw0rd":      true,
		"abcdefg1":      true,
		"12345678a":     true,
		"short1a":       false,
		"onlyletters":   false,
		"1234567890":    false,
		"":              false,
		"        1a":    true,
		"éééééééé1":     false,
		"with space 1a": true,
	}

	for candidate, want := range cases {
		if got := IsAcceptable(candidate); got != want {
			t.Errorf("IsAcceptable(%q) = %v, want %v", candidate, got, want)
		}
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "Passw0rd" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("Passw0rd", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("passw0rd", digest) {
		t.Fatalf("expected different password to fail")
	}
	if h.Verify("Passw0rd", "not-a-bcrypt-digest") {
		t.Fatalf("expected malformed digest to fail without panicking")
	}
	if h.Verify("Passw0rd", "") {
		t.Fatalf("expected empty digest to fail")
	}
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	if got := NewBcryptHasher(100).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}
