package values

import (
	"strings"
	"testing"
)

func TestNewEmail_NormalizesToLowercase(t *testing.T) {
	e, err := NewEmail("John.Doe@Example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.String(); got != "john.doe@example.com" {
		t.Fatalf("expected lowercased value, got %q", got)
	}
	if got := e.Domain(); got != "example.com" {
		t.Fatalf("expected domain example.com, got %q", got)
	}
}

func TestNewEmail_RejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"bad-email",
		"@example.com",
		"jean@",
		"jean@dupont",
		"jean dupont@example.com",
		strings.Repeat("a", 250) + "@example.com",
	}

	for _, raw := range cases {
		if _, err := NewEmail(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		} else if !IsValidation(err) {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestEmail_EqualsByValue(t *testing.T) {
	a, _ := NewEmail("jean@example.com")
	b, _ := NewEmail("JEAN@example.com")
	if !a.Equals(b) {
		t.Fatalf("expected %q and %q to be equal after normalization", a, b)
	}
}
