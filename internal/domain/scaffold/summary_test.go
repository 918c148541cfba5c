// Where: internal/domain/scaffold/summary_test.go
// What: Tests for the post-generation summary.
// Why: Feature lines must follow the flags; next steps are always present.
package scaffold

import (
	"strings"
	"testing"

	"github.com/poruru-code/appgen/internal/domain/answers"
)

func summaryContext(a answers.Answers) answers.Context {
	a.AppName = "acme-crm"
	a.DisplayName = "Acme CRM"
	a.Region = "us-east1"
	return answers.Derive(a, func() int { return 123 })
}

func TestSummaryBaseline(t *testing.T) {
	got := Summary(summaryContext(answers.Answers{}), "/work/acme")
	for _, want := range []string{
		"APP GENERATED SUCCESSFULLY",
		"  App: Acme CRM",
		"  Path: /work/acme",
		"acme-crm-stg-000123 (staging), acme-crm-prod-000123 (production)",
		"cd terraform/environments/acme-crm-staging",
		"update-firebase-config acme-crm staging us-east1",
		"cd frontend && npm start",
		"firebase deploy --only firestore:rules,storage:rules",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	for _, absent := range []string{"Stripe", "Fatture in Cloud", "Gemini"} {
		if strings.Contains(got, absent) {
			t.Errorf("summary must not mention %q", absent)
		}
	}
}

func TestSummaryFeatureLines(t *testing.T) {
	got := Summary(summaryContext(answers.Answers{IncludeStripe: true, IncludeFIC: true, IncludeGemini: true}), "/work/acme")
	for _, want := range []string{
		"  - Stripe: Subscriptions and Payments",
		"  - Fatture in Cloud: Italian invoicing",
		"  - Google Gemini AI integration",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
