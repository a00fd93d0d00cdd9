package domain

import "testing"

func strPtr(s string) *string {
	return &s
}

func TestUserCreateValidate(t *testing.T) {
	valid := UserCreate{OWUserID: 1, FirstName: "Ola", LastName: "Nordmann"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cases := []struct {
		name      string
		candidate UserCreate
	}{
		{"zero external id", UserCreate{OWUserID: 0, FirstName: "Ola", LastName: "Nordmann"}},
		{"negative external id", UserCreate{OWUserID: -4, FirstName: "Ola", LastName: "Nordmann"}},
		{"empty first name", UserCreate{OWUserID: 1, FirstName: "  ", LastName: "Nordmann"}},
		{"empty last name", UserCreate{OWUserID: 1, FirstName: "Ola", LastName: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.candidate.Validate(); err == nil {
				t.Errorf("Expected validation error for %+v", tc.candidate)
			}
		})
	}
}

func TestUserCreateMatches(t *testing.T) {
	base := &User{
		UserID:    7,
		OWUserID:  1,
		FirstName: "Ola",
		LastName:  "Nordmann",
		Email:     strPtr("ola@example.com"),
	}

	identical := UserCreate{OWUserID: 1, FirstName: "Ola", LastName: "Nordmann", Email: strPtr("ola@example.com")}
	if !identical.Matches(base) {
		t.Error("Expected identical candidate to match")
	}

	// Comparison is exact, no case folding
	cased := UserCreate{OWUserID: 1, FirstName: "ola", LastName: "Nordmann", Email: strPtr("ola@example.com")}
	if cased.Matches(base) {
		t.Error("Expected case-different first name to not match")
	}

	changedEmail := UserCreate{OWUserID: 1, FirstName: "Ola", LastName: "Nordmann", Email: strPtr("new@example.com")}
	if changedEmail.Matches(base) {
		t.Error("Expected changed email to not match")
	}

	nilEmail := UserCreate{OWUserID: 1, FirstName: "Ola", LastName: "Nordmann", Email: nil}
	if nilEmail.Matches(base) {
		t.Error("Expected nil email to not match a set email")
	}

	noEmailUser := &User{UserID: 8, OWUserID: 2, FirstName: "Kari", LastName: "Nordmann"}
	bothNil := UserCreate{OWUserID: 2, FirstName: "Kari", LastName: "Nordmann"}
	if !bothNil.Matches(noEmailUser) {
		t.Error("Expected nil email to match a nil email")
	}
}
