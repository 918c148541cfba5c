// Where: internal/domain/answers/answers.go
// What: Answer Set collected for the app generator.
// Why: Give prompts, answers files, and templates one typed view of the user's choices.
package answers

import (
	"fmt"
	"strings"
)

// Answers is the validated Answer Set for a single generator run.
// JSON names match the prompt names and the keys templates see.
type Answers struct {
	AppName           string `json:"appName"`
	DisplayName       string `json:"displayName"`
	Description       string `json:"description"`
	GitHubRepo        string `json:"githubRepo"`
	Domain            string `json:"domain"`
	CopyrightHolder   string `json:"copyrightHolder"`
	BillingAccountID  string `json:"billingAccountId"`
	Region            string `json:"region"`
	IncludeStripe     bool   `json:"includeStripe"`
	IncludeFIC        bool   `json:"includeFIC"`
	IncludeGemini     bool   `json:"includeGemini"`
	EnableAuth        bool   `json:"enableAuth"`
	AuthEmailPassword bool   `json:"authEmailPassword"`
	AuthGoogle        bool   `json:"authGoogle"`
}

// Normalize resolves dependent confirmations that were never shown to false.
// Invoicing requires payments; both auth providers require authentication.
func (a Answers) Normalize() Answers {
	if !a.IncludeStripe {
		a.IncludeFIC = false
	}
	if !a.EnableAuth {
		a.AuthEmailPassword = false
		a.AuthGoogle = false
	}
	return a
}

// Validate runs every field validator and joins the failures.
func (a Answers) Validate() error {
	var problems []string
	for _, q := range Questions() {
		if q.Kind != KindInput || q.Validate == nil {
			continue
		}
		if err := q.Validate(a.Text(q.Name)); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", q.Name, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid answers: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Text returns the string answer stored under a prompt name.
func (a Answers) Text(name string) string {
	switch name {
	case NameAppName:
		return a.AppName
	case NameDisplayName:
		return a.DisplayName
	case NameDescription:
		return a.Description
	case NameGitHubRepo:
		return a.GitHubRepo
	case NameDomain:
		return a.Domain
	case NameCopyrightHolder:
		return a.CopyrightHolder
	case NameBillingAccountID:
		return a.BillingAccountID
	case NameRegion:
		return a.Region
	}
	return ""
}

// SetText stores a string answer under a prompt name.
func (a *Answers) SetText(name, value string) {
	switch name {
	case NameAppName:
		a.AppName = value
	case NameDisplayName:
		a.DisplayName = value
	case NameDescription:
		a.Description = value
	case NameGitHubRepo:
		a.GitHubRepo = value
	case NameDomain:
		a.Domain = value
	case NameCopyrightHolder:
		a.CopyrightHolder = value
	case NameBillingAccountID:
		a.BillingAccountID = value
	case NameRegion:
		a.Region = value
	}
}

// Flag returns the boolean answer stored under a prompt name.
func (a Answers) Flag(name string) bool {
	switch name {
	case NameIncludeStripe:
		return a.IncludeStripe
	case NameIncludeFIC:
		return a.IncludeFIC
	case NameIncludeGemini:
		return a.IncludeGemini
	case NameEnableAuth:
		return a.EnableAuth
	case NameAuthEmailPassword:
		return a.AuthEmailPassword
	case NameAuthGoogle:
		return a.AuthGoogle
	}
	return false
}

// SetFlag stores a boolean answer under a prompt name.
func (a *Answers) SetFlag(name string, value bool) {
	switch name {
	case NameIncludeStripe:
		a.IncludeStripe = value
	case NameIncludeFIC:
		a.IncludeFIC = value
	case NameIncludeGemini:
		a.IncludeGemini = value
	case NameEnableAuth:
		a.EnableAuth = value
	case NameAuthEmailPassword:
		a.AuthEmailPassword = value
	case NameAuthGoogle:
		a.AuthGoogle = value
	}
}
