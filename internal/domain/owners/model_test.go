package owners

import (
	"testing"

	"pet-registry/internal/domain/values"
)

func TestValidateNames(t *testing.T) {
	t.Run("first name is capitalized", func(t *testing.T) {
		got, err := validateFirstName("  jean-pierre ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Jean-pierre" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("last name is upper-cased", func(t *testing.T) {
		got, err := validateLastName("dupont")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "DUPONT" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("accents and apostrophes are allowed", func(t *testing.T) {
		if _, err := validateFirstName("Héloïse"); err != nil {
			t.Fatalf("accented name rejected: %v", err)
		}
		if _, err := validateLastName("D'Artagnan"); err != nil {
			t.Fatalf("apostrophe rejected: %v", err)
		}
	})

	t.Run("rejects digits and length bounds", func(t *testing.T) {
		if _, err := validateFirstName("Jean2"); err == nil {
			t.Fatalf("digit accepted")
		}
		_, err := validateFirstName("J")
		if err == nil {
			t.Fatalf("single rune accepted")
		}
		if !values.IsValidation(err) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})
}

func TestOwnerMutators(t *testing.T) {
	email, _ := values.NewEmail("jean.dupont@example.com")
	phone, _ := values.NewPhoneNumber("0612345678")
	addr, _ := values.NewAddress("123 Rue de la République", "Paris", "75001", "France")

	o := Owner{FirstName: "Jean", LastName: "DUPONT", Email: email, Phone: phone, Address: addr, IsActive: true}

	if ch, err := o.UpdateName("jean", "dupont"); err != nil || ch {
		t.Fatalf("same normalized name: changed=%v err=%v", ch, err)
	}
	if ch, err := o.UpdateName("marie", "martin"); err != nil || !ch {
		t.Fatalf("new name: changed=%v err=%v", ch, err)
	}
	if o.FullName() != "Marie MARTIN" {
		t.Fatalf("FullName = %q", o.FullName())
	}

	if o.UpdateContactInfo(email, phone) {
		t.Fatalf("same contact info reported a change")
	}
	other, _ := values.NewPhoneNumber("0712345678")
	if !o.UpdateContactInfo(email, other) {
		t.Fatalf("new phone not reported as a change")
	}

	if o.UpdateAddress(addr) {
		t.Fatalf("same address reported a change")
	}
	moved, _ := values.NewAddress("10 Avenue Victor Hugo", "Lyon", "69002", "France")
	if !o.UpdateAddress(moved) {
		t.Fatalf("new address not reported as a change")
	}

	if o.Activate() {
		t.Fatalf("activating an active owner reported a change")
	}
	if !o.Deactivate() {
		t.Fatalf("deactivating an active owner must report a change")
	}
	if o.Deactivate() {
		t.Fatalf("deactivating twice reported a change")
	}
	if !o.Activate() {
		t.Fatalf("reactivating must report a change")
	}
}
