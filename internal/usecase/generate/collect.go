// Where: internal/usecase/generate/collect.go
// What: Interactive collection of the Answer Set.
// Why: Walk the prompt table in order, honoring visibility and re-prompting on invalid input.
package generate

import (
	"fmt"
	"strings"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/infra/interaction"
	"github.com/poruru-code/appgen/internal/infra/ui"
)

// maxAttempts bounds re-prompts for prompters that cannot validate inline.
const maxAttempts = 20

// Collect asks every visible question and returns the normalized answers.
// Hidden confirmations resolve to false.
func Collect(
	prompter interaction.Prompter,
	console *ui.Console,
	defaults answers.Defaults,
	recentRegions []string,
) (answers.Answers, error) {
	if prompter == nil {
		return answers.Answers{}, fmt.Errorf("prompter is not configured")
	}
	var a answers.Answers
	for _, q := range answers.QuestionsWithDefaults(defaults) {
		if !q.Visible(a) {
			if q.Kind == answers.KindConfirm {
				a.SetFlag(q.Name, false)
			}
			continue
		}
		switch q.Kind {
		case answers.KindInput:
			value, err := askInput(prompter, console, q, a, recentRegions)
			if err != nil {
				return answers.Answers{}, err
			}
			a.SetText(q.Name, value)
		case answers.KindConfirm:
			value, err := prompter.Confirm(q.Message, q.FlagDefault)
			if err != nil {
				return answers.Answers{}, fmt.Errorf("%s: %w", q.Name, err)
			}
			a.SetFlag(q.Name, value)
		}
	}
	return a.Normalize(), nil
}

func askInput(
	prompter interaction.Prompter,
	console *ui.Console,
	q answers.Question,
	a answers.Answers,
	recentRegions []string,
) (string, error) {
	def := q.DefaultText(a)
	var suggestions []string
	if q.Name == answers.NameRegion {
		suggestions = answers.BuildSuggestions(def, recentRegions, answers.CommonRegions)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		value, err := prompter.Input(q.Message, def, suggestions, q.Validate)
		if err != nil {
			return "", fmt.Errorf("%s: %w", q.Name, err)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			value = def
		}
		if q.Validate == nil {
			return value, nil
		}
		if err := q.Validate(value); err != nil {
			if console != nil {
				console.Warn(err.Error())
			}
			continue
		}
		return value, nil
	}
	return "", fmt.Errorf("%s: no valid answer after %d attempts", q.Name, maxAttempts)
}
