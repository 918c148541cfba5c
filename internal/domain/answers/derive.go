// Where: internal/domain/answers/derive.go
// What: Derived Identifiers for the staging and production GCP projects.
// Why: Give each generated app project IDs that are unlikely to collide globally.
package answers

import (
	"fmt"
	"math/rand"
)

const suffixSpace = 1_000_000

// SuffixSource returns a value in [0, 999999].
type SuffixSource func() int

// RandomSuffix draws from the process-wide PRNG. Collisions are possible and unhandled.
func RandomSuffix() int {
	return rand.Intn(suffixSpace)
}

// Derived holds identifiers computed after collection. It never mutates Answers.
type Derived struct {
	StagingProjectID    string `json:"stagingProjectId"`
	ProductionProjectID string `json:"productionProjectId"`
}

// Context is an Answer Set plus its Derived Identifiers.
type Context struct {
	Answers
	Derived
}

// Derive computes both project IDs from one shared suffix.
func Derive(a Answers, source SuffixSource) Context {
	if source == nil {
		source = RandomSuffix
	}
	suffix := FormatSuffix(source())
	return Context{
		Answers: a,
		Derived: Derived{
			StagingProjectID:    fmt.Sprintf("%s-stg-%s", a.AppName, suffix),
			ProductionProjectID: fmt.Sprintf("%s-prod-%s", a.AppName, suffix),
		},
	}
}

// FormatSuffix zero-pads to six digits, folding out-of-range values into range.
func FormatSuffix(n int) string {
	n %= suffixSpace
	if n < 0 {
		n += suffixSpace
	}
	return fmt.Sprintf("%06d", n)
}

// TemplateData flattens the context into the key space templates address.
func (c Context) TemplateData() map[string]any {
	return map[string]any{
		NameAppName:           c.AppName,
		NameDisplayName:       c.DisplayName,
		NameDescription:       c.Description,
		NameGitHubRepo:        c.GitHubRepo,
		NameDomain:            c.Domain,
		NameCopyrightHolder:   c.CopyrightHolder,
		NameBillingAccountID:  c.BillingAccountID,
		NameRegion:            c.Region,
		NameIncludeStripe:     c.IncludeStripe,
		NameIncludeFIC:        c.IncludeFIC,
		NameIncludeGemini:     c.IncludeGemini,
		NameEnableAuth:        c.EnableAuth,
		NameAuthEmailPassword: c.AuthEmailPassword,
		NameAuthGoogle:        c.AuthGoogle,
		"stagingProjectId":    c.StagingProjectID,
		"productionProjectId": c.ProductionProjectID,
	}
}
