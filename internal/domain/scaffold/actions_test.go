// Where: internal/domain/scaffold/actions_test.go
// What: Tests for Action List assembly.
// Why: Pin the emitted file set and its dependence on the payment flag.
package scaffold

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/poruru-code/appgen/assets"
	"github.com/poruru-code/appgen/internal/domain/answers"
)

func TestBuildActionsBaseline(t *testing.T) {
	actions := BuildActions(answers.Context{})
	if len(actions) != 56 {
		t.Fatalf("len(actions) = %d, want 56", len(actions))
	}
	if actions[len(actions)-1].Kind != ActionSummary {
		t.Fatalf("last action must be the summary")
	}
	if got := len(FileActions(actions)); got != 55 {
		t.Fatalf("file actions = %d, want 55", got)
	}
}

func TestBuildActionsStripeAddsFour(t *testing.T) {
	base := FileActions(BuildActions(answers.Context{}))
	ctx := answers.Context{Answers: answers.Answers{IncludeStripe: true}}
	withStripe := BuildActions(ctx)
	files := FileActions(withStripe)
	if len(files)-len(base) != 4 {
		t.Fatalf("stripe added %d files, want 4", len(files)-len(base))
	}
	if withStripe[len(withStripe)-1].Kind != ActionSummary {
		t.Fatalf("summary must stay last with stripe")
	}
	for _, a := range files[len(base):] {
		if !strings.Contains(a.Path, "payments") && !strings.Contains(a.Path, "subscription") {
			t.Errorf("unexpected stripe action %s", a.Path)
		}
	}
}

func TestBuildActionsIgnoresOtherFlags(t *testing.T) {
	base := BuildActions(answers.Context{})
	ctx := answers.Context{Answers: answers.Answers{IncludeGemini: true, IncludeFIC: true, EnableAuth: true, AuthGoogle: true}}
	if got := BuildActions(ctx); len(got) != len(base) {
		t.Fatalf("len = %d, want %d", len(got), len(base))
	}
}

func TestBuildActionsDestinationsAreUnique(t *testing.T) {
	ctx := answers.Context{Answers: answers.Answers{IncludeStripe: true}}
	seen := map[string]bool{}
	for _, a := range FileActions(BuildActions(ctx)) {
		if seen[a.Path] {
			t.Errorf("duplicate destination %s", a.Path)
		}
		seen[a.Path] = true
	}
}

func TestBuildActionsTemplatesAreEmbedded(t *testing.T) {
	templates := assets.Templates()
	ctx := answers.Context{Answers: answers.Answers{IncludeStripe: true}}
	for _, a := range FileActions(BuildActions(ctx)) {
		if _, err := fs.Stat(templates, a.Template); err != nil {
			t.Errorf("template %s for %s: %v", a.Template, a.Path, err)
		}
	}
}
