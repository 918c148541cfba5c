// Where: internal/domain/answers/validate_test.go
// What: Tests for prompt validators.
// Why: Keep accepted input formats stable for prompts and answers files.
package answers

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{value: "acme-crm"},
		{value: "ab"},
		{value: "a1-b2"},
		{value: strings.Repeat("a", 30)},
		{value: "My_App", want: ErrAppNameFormat},
		{value: "1app", want: ErrAppNameFormat},
		{value: "", want: ErrAppNameFormat},
		{value: "a", want: ErrAppNameTooShort},
		{value: strings.Repeat("a", 31), want: ErrAppNameTooLong},
	}
	for _, tt := range tests {
		if err := ValidateAppName(tt.value); !errors.Is(err, tt.want) {
			t.Errorf("ValidateAppName(%q) = %v, want %v", tt.value, err, tt.want)
		}
	}
}

func TestValidateGitHubRepo(t *testing.T) {
	for _, ok := range []string{"acme/acme-crm", "my_org/repo.js", "A-1/b"} {
		if err := ValidateGitHubRepo(ok); err != nil {
			t.Errorf("ValidateGitHubRepo(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"acme", "acme/", "/repo", "a/b/c", "acme repo/x"} {
		if err := ValidateGitHubRepo(bad); !errors.Is(err, ErrGitHubRepoFormat) {
			t.Errorf("ValidateGitHubRepo(%q) = %v", bad, err)
		}
	}
}

func TestValidateDomain(t *testing.T) {
	for _, ok := range []string{"myapp.com", "acme.example.com", "my-app.io"} {
		if err := ValidateDomain(ok); err != nil {
			t.Errorf("ValidateDomain(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"localhost", "-app.com", "app.c", "app.123"} {
		if err := ValidateDomain(bad); !errors.Is(err, ErrDomainFormat) {
			t.Errorf("ValidateDomain(%q) = %v", bad, err)
		}
	}
}

func TestValidateBillingAccountID(t *testing.T) {
	if err := ValidateBillingAccountID("ABCDEF-123456-7890AB"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	for _, bad := range []string{"abcdef-123456-7890ab", "ABCDEF-12345-7890AB", "ABCDEF1234567890AB", ""} {
		if err := ValidateBillingAccountID(bad); !errors.Is(err, ErrBillingAccountFmt) {
			t.Errorf("ValidateBillingAccountID(%q) = %v", bad, err)
		}
	}
}

func TestValidateDisplayName(t *testing.T) {
	if err := ValidateDisplayName(""); !errors.Is(err, ErrDisplayNameEmpty) {
		t.Errorf("ValidateDisplayName(\"\") = %v", err)
	}
	if err := ValidateDisplayName("Acme CRM"); err != nil {
		t.Errorf("ValidateDisplayName(Acme CRM) = %v", err)
	}
}
