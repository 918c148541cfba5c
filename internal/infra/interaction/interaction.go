// Where: internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep workflows focused on orchestration.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when prompts are needed but stdin is not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal; pass --answers <file> to run non-interactively")

// Prompter defines the interface for interactive user input.
type Prompter interface {
	// Input asks for a line of text. validate runs on every submission and a
	// failure keeps the prompt open with the message shown inline.
	Input(title, defaultValue string, suggestions []string, validate func(string) error) (string, error)
	Confirm(title string, defaultValue bool) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequireTerminal fails fast when interactive prompts cannot be shown.
func RequireTerminal(file *os.File) error {
	if !IsTerminal(file) {
		return ErrNotInteractive
	}
	return nil
}
