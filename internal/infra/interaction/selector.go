// Where: internal/infra/interaction/selector.go
// What: Prompt implementations using the huh library.
// Why: Provide inline validation and keyboard-driven confirmation for generator prompts.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, suggestions []string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if validate != nil {
		field.Validate(validate)
	}
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runConfirmPrompt = func(title string, confirmed *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(confirmed).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, defaultValue string, suggestions []string, validate func(string) error) (string, error) {
	input := defaultValue
	err := runInputPrompt(title, suggestions, withDefault(validate, defaultValue), &input)
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	if input == "" {
		input = defaultValue
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	if err := runConfirmPrompt(title, &confirmed); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return confirmed, nil
}

// withDefault validates the default when the field is submitted empty.
func withDefault(validate func(string) error, defaultValue string) func(string) error {
	if validate == nil {
		return nil
	}
	return func(value string) error {
		if value == "" && defaultValue != "" {
			return validate(defaultValue)
		}
		return validate(value)
	}
}
