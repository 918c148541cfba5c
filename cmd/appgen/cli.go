// Where: cmd/appgen/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/appgen/assets"
	"github.com/poruru-code/appgen/internal/command"
	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/infra/config"
	"github.com/poruru-code/appgen/internal/infra/interaction"
	"github.com/poruru-code/appgen/internal/infra/shell"
)

var getwd = os.Getwd

// buildDependencies resolves the working directory once and wires the real
// prompter, templates, and user config location.
func buildDependencies() (command.Dependencies, error) {
	wd, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		WorkingDir: wd,
		Prompter:   interaction.HuhPrompter{},
		RequireTTY: func() error { return interaction.RequireTerminal(os.Stdin) },
		Templates:  assets.Templates(),
		Suffix:     answers.RandomSuffix,
		ConfigPath: config.GlobalConfigPath,
		Runner:     shell.ExecRunner{},
	}, nil
}
