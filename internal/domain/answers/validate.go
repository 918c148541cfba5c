// Where: internal/domain/answers/validate.go
// What: Per-field validators for generator prompts.
// Why: Reject bad input at collection time so callers can re-prompt.
package answers

import (
	"errors"
	"regexp"
)

const (
	appNameMinLen = 2
	appNameMaxLen = 30
)

var (
	appNamePattern   = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	githubPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]+/[a-zA-Z0-9_.-]+$`)
	domainPattern    = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_.]*\.[a-zA-Z]{2,}$`)
	billingIDPattern = regexp.MustCompile(`^[A-Z0-9]{6}-[A-Z0-9]{6}-[A-Z0-9]{6}$`)
)

var (
	ErrAppNameFormat     = errors.New("app name must be kebab-case (lowercase letters, numbers, and hyphens only, starting with a letter)")
	ErrAppNameTooShort   = errors.New("app name must be at least 2 characters")
	ErrAppNameTooLong    = errors.New("app name must be at most 30 characters")
	ErrDisplayNameEmpty  = errors.New("display name is required")
	ErrGitHubRepoFormat  = errors.New("GitHub repository must be in owner/repo format (e.g., myorg/my-app)")
	ErrDomainFormat      = errors.New("please enter a valid domain (e.g., myapp.com)")
	ErrBillingAccountFmt = errors.New("billing account ID must be in format XXXXXX-XXXXXX-XXXXXX")
)

// ValidateAppName checks the kebab-case pattern, then the length bounds.
func ValidateAppName(value string) error {
	if !appNamePattern.MatchString(value) {
		return ErrAppNameFormat
	}
	if len(value) < appNameMinLen {
		return ErrAppNameTooShort
	}
	if len(value) > appNameMaxLen {
		return ErrAppNameTooLong
	}
	return nil
}

func ValidateDisplayName(value string) error {
	if value == "" {
		return ErrDisplayNameEmpty
	}
	return nil
}

func ValidateGitHubRepo(value string) error {
	if !githubPattern.MatchString(value) {
		return ErrGitHubRepoFormat
	}
	return nil
}

func ValidateDomain(value string) error {
	if !domainPattern.MatchString(value) {
		return ErrDomainFormat
	}
	return nil
}

func ValidateBillingAccountID(value string) error {
	if !billingIDPattern.MatchString(value) {
		return ErrBillingAccountFmt
	}
	return nil
}
