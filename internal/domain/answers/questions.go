// Where: internal/domain/answers/questions.go
// What: Ordered prompt table for the app generator.
// Why: Keep prompt order, defaults, validation, and visibility rules declarative.
package answers

import "github.com/poruru-code/appgen/internal/meta"

// Prompt names, shared with answers files and template data keys.
const (
	NameAppName           = "appName"
	NameDisplayName       = "displayName"
	NameDescription       = "description"
	NameGitHubRepo        = "githubRepo"
	NameDomain            = "domain"
	NameCopyrightHolder   = "copyrightHolder"
	NameBillingAccountID  = "billingAccountId"
	NameRegion            = "region"
	NameIncludeStripe     = "includeStripe"
	NameIncludeFIC        = "includeFIC"
	NameIncludeGemini     = "includeGemini"
	NameEnableAuth        = "enableAuth"
	NameAuthEmailPassword = "authEmailPassword"
	NameAuthGoogle        = "authGoogle"
)

// Kind selects the prompt widget.
type Kind int

const (
	KindInput Kind = iota
	KindConfirm
)

// Defaults seeds prompt defaults from user configuration.
// Empty fields fall back to the built-in defaults.
type Defaults struct {
	Region           string
	BillingAccountID string
	CopyrightHolder  string
	Description      string
}

// Question describes one prompt. TextDefault computes an input default from the
// answers collected so far. When hides the prompt unless it returns true; hidden
// confirms resolve to false.
type Question struct {
	Name        string
	Kind        Kind
	Message     string
	TextDefault func(Answers) string
	FlagDefault bool
	Validate    func(string) error
	When        func(Answers) bool
}

// Visible reports whether the question is shown given earlier answers.
func (q Question) Visible(a Answers) bool {
	return q.When == nil || q.When(a)
}

// DefaultText returns the input default for the question.
func (q Question) DefaultText(a Answers) string {
	if q.TextDefault == nil {
		return ""
	}
	return q.TextDefault(a)
}

// Questions returns the prompt table with built-in defaults.
func Questions() []Question {
	return QuestionsWithDefaults(Defaults{})
}

// QuestionsWithDefaults returns the prompt table seeded with user defaults.
func QuestionsWithDefaults(d Defaults) []Question {
	return []Question{
		{
			Name:     NameAppName,
			Kind:     KindInput,
			Message:  `App name (kebab-case, e.g., "my-app"):`,
			Validate: ValidateAppName,
		},
		{
			Name:     NameDisplayName,
			Kind:     KindInput,
			Message:  `Display name (e.g., "My App"):`,
			Validate: ValidateDisplayName,
		},
		{
			Name:        NameDescription,
			Kind:        KindInput,
			Message:     "Short description:",
			TextDefault: constant(firstNonEmpty(d.Description, meta.DefaultDescription)),
		},
		{
			Name:     NameGitHubRepo,
			Kind:     KindInput,
			Message:  `GitHub repository (owner/repo format, e.g., "myorg/my-app"):`,
			Validate: ValidateGitHubRepo,
		},
		{
			Name:     NameDomain,
			Kind:     KindInput,
			Message:  `Domain for emails and docs (e.g., "myapp.com"):`,
			Validate: ValidateDomain,
		},
		{
			Name:    NameCopyrightHolder,
			Kind:    KindInput,
			Message: "Copyright holder name:",
			TextDefault: func(a Answers) string {
				return firstNonEmpty(d.CopyrightHolder, a.DisplayName)
			},
		},
		{
			Name:        NameBillingAccountID,
			Kind:        KindInput,
			Message:     `GCP Billing Account ID (e.g., "XXXXXX-XXXXXX-XXXXXX"):`,
			TextDefault: constant(d.BillingAccountID),
			Validate:    ValidateBillingAccountID,
		},
		{
			Name:        NameRegion,
			Kind:        KindInput,
			Message:     "GCP Region:",
			TextDefault: constant(firstNonEmpty(d.Region, meta.DefaultRegion)),
		},
		{
			Name:    NameIncludeStripe,
			Kind:    KindConfirm,
			Message: "Include Stripe payment integration?",
		},
		{
			Name:    NameIncludeFIC,
			Kind:    KindConfirm,
			Message: "Include Fatture in Cloud integration? (Italian invoicing)",
			When:    func(a Answers) bool { return a.IncludeStripe },
		},
		{
			Name:    NameIncludeGemini,
			Kind:    KindConfirm,
			Message: "Include Google Gemini AI integration?",
		},
		{
			Name:        NameEnableAuth,
			Kind:        KindConfirm,
			Message:     "Enable Firebase Authentication?",
			FlagDefault: true,
		},
		{
			Name:        NameAuthEmailPassword,
			Kind:        KindConfirm,
			Message:     "Enable Email/Password authentication?",
			FlagDefault: true,
			When:        func(a Answers) bool { return a.EnableAuth },
		},
		{
			Name:    NameAuthGoogle,
			Kind:    KindConfirm,
			Message: "Prepare Google Sign-In? (requires OAuth credentials later)",
			When:    func(a Answers) bool { return a.EnableAuth },
		},
	}
}

// ApplyDefaults fills empty optional inputs with their defaults, in prompt order,
// so copyrightHolder sees the final displayName.
func ApplyDefaults(a Answers, d Defaults) Answers {
	for _, q := range QuestionsWithDefaults(d) {
		if q.Kind != KindInput || q.TextDefault == nil {
			continue
		}
		if a.Text(q.Name) == "" {
			a.SetText(q.Name, q.DefaultText(a))
		}
	}
	return a
}

func constant(value string) func(Answers) string {
	return func(Answers) string { return value }
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
