package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"alice@acme.com", "acme.com"},
		{"Bob@ACME.COM", "acme.com"},
		{"no-at-sign", ""},
		{"weird@inner@acme.com", "acme.com"},
	}
	for _, c := range cases {
		got := EmailDomain(c.input)
		if got != c.want {
			t.Errorf("EmailDomain(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidCompanyDomain(t *testing.T) {
	valid := []string{"acme.com", "sub.acme.com", "a-b.co"}
	invalid := []string{"acme", "-acme.com", "ACME.COM", "", "acme..com"}
	for _, domain := range valid {
		if !IsValidCompanyDomain(domain) {
			t.Errorf("IsValidCompanyDomain(%q) = false, want true", domain)
		}
	}
	for _, domain := range invalid {
		if IsValidCompanyDomain(domain) {
			t.Errorf("IsValidCompanyDomain(%q) = true, want false", domain)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	if !IsValidUUID("7f6c8e4a-11d3-4a1b-9a6e-0242ac120002") {
		t.Error("well-formed UUID rejected")
	}
	if IsValidUUID("not-a-uuid") {
		t.Error("malformed UUID accepted")
	}
	if IsValidUUID("") {
		t.Error("empty string accepted")
	}
}

func TestMaxLen(t *testing.T) {
	if !MaxLen("abc", 3) {
		t.Error("MaxLen(abc, 3) = false, want true")
	}
	if MaxLen("abcd", 3) {
		t.Error("MaxLen(abcd, 3) = true, want false")
	}
	// Rune count, not byte count
	if !MaxLen("日本語", 3) {
		t.Error("MaxLen(日本語, 3) = false, want true")
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:00", "23:59", "09:00:30"}
	invalid := []string{"24:00", "9am", "", "12-00"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00"}
	invalid := []string{"2024-01-15", "10:30", "", "not-a-time"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["email"] != "email is required" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
}
