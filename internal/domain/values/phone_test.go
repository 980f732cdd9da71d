package values

import "testing"

func TestNewPhoneNumber_NormalizesInternationalPrefix(t *testing.T) {
	a, err := NewPhoneNumber("0033612345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewPhoneNumber("+33612345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.String() != "+33612345678" {
		t.Fatalf("expected 00 prefix rewritten to +, got %q", a)
	}
	if !a.Equals(b) {
		t.Fatalf("expected %q and %q to normalize to the same value", a, b)
	}
}

func TestNewPhoneNumber_StripsSeparators(t *testing.T) {
	p, err := NewPhoneNumber("+33 6 12-34.56 78")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.String() != "+33612345678" {
		t.Fatalf("expected separators stripped, got %q", p)
	}
}

func TestNewPhoneNumber_RejectsInvalid(t *testing.T) {
	cases := []string{"", "12", "+0612345678", "abc", "+33"}
	for _, raw := range cases {
		if _, err := NewPhoneNumber(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPhoneNumber_CountryAndType(t *testing.T) {
	cases := []struct {
		raw     string
		country string
		typ     string
	}{
		{"0612345678", "France", "mobile"},
		{"+33712345678", "France", "mobile"},
		{"0145678901", "France", "fixe"},
		{"+3225551234", "Belgique", "inconnu"},
		{"+41215551234", "Suisse", "inconnu"},
		{"+12125551234", "Amérique du Nord", "inconnu"},
		{"+493055512345", "International", "inconnu"},
		{"61234567", "Inconnu", "inconnu"},
	}

	for _, c := range cases {
		p, err := NewPhoneNumber(c.raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", c.raw, err)
		}
		if got := p.Country(); got != c.country {
			t.Fatalf("%q: expected country %q, got %q", c.raw, c.country, got)
		}
		if got := p.Type(); got != c.typ {
			t.Fatalf("%q: expected type %q, got %q", c.raw, c.typ, got)
		}
	}
}

func TestPhoneNumber_Formatted(t *testing.T) {
	national, _ := NewPhoneNumber("0612345678")
	if got := national.Formatted(); got != "06 12 34 56 78" {
		t.Fatalf("expected paired national format, got %q", got)
	}

	intl, _ := NewPhoneNumber("+33612345678")
	if got := intl.Formatted(); got != "+33 6 12 34 56 78" {
		t.Fatalf("expected paired +33 format, got %q", got)
	}

	other, _ := NewPhoneNumber("+12125551234")
	if got := other.Formatted(); got != "+12125551234" {
		t.Fatalf("expected non-French numbers unchanged, got %q", got)
	}
}

func TestPhoneNumber_MaskedKeepsLastTwoDigits(t *testing.T) {
	p, _ := NewPhoneNumber("+33612345678")
	if got := p.Masked(); got != "+*********78" {
		t.Fatalf("unexpected masked value %q", got)
	}

	n, _ := NewPhoneNumber("0612345678")
	if got := n.Masked(); got != "********78" {
		t.Fatalf("unexpected masked value %q", got)
	}
}
