// Where: internal/command/generate.go
// What: appgen command adapter.
// Why: Parse flags, wire the generate workflow, and map its result to an exit code.
package command

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/poruru-code/appgen/assets"
	"github.com/poruru-code/appgen/internal/infra/config"
	"github.com/poruru-code/appgen/internal/meta"
	"github.com/poruru-code/appgen/internal/usecase/generate"
)

// GenerateCLI defines the appgen command line parsed by Kong.
type GenerateCLI struct {
	Generator string `arg:"" optional:"" default:"app" enum:"app" help:"Generator to run (only \"app\" is available)"`
	Answers   string `short:"a" help:"Answers file (YAML or JSON); skips the prompts"`
	Output    string `short:"o" help:"Output directory (default: current directory)"`
	Force     bool   `help:"Overwrite files that already exist"`
	DryRun    bool   `name:"dry-run" help:"List the files that would be written and exit"`
	NoSave    bool   `name:"no-save-defaults" help:"Do not remember region and billing account"`
	Version   bool   `help:"Show version information"`
	CommonFlags
}

// RunGenerate is the appgen entrypoint. Returns 0 on success, 1 on error.
func RunGenerate(args []string, deps Dependencies) int {
	deps = deps.withDefaults()

	cli := GenerateCLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Scaffold a Firebase app (Angular/Ionic frontend, functions, terraform, workflows)."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if cli.Version {
		return runVersion(deps.Out)
	}
	if err := cli.prepare(deps); err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	configPath, err := resolveConfigPath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	templates := deps.Templates
	if templates == nil {
		templates = assets.Templates()
	}

	workflow := generate.Workflow{
		Prompter:   deps.Prompter,
		Templates:  templates,
		UI:         newConsole(deps),
		Suffix:     deps.Suffix,
		ConfigPath: configPath,
		RequireTTY: deps.RequireTTY,
	}
	req := generate.Request{
		OutputDir:    resolvePath(deps.WorkingDir, cli.Output),
		AnswersFile:  optionalPath(deps.WorkingDir, cli.Answers),
		Force:        cli.Force,
		DryRun:       cli.DryRun,
		SaveDefaults: !cli.NoSave && !cli.DryRun,
	}
	if _, err := workflow.Run(req); err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("generate %s: %w", cli.Generator, err))
	}
	return 0
}

func resolveConfigPath(deps Dependencies) (string, error) {
	if deps.ConfigPath != nil {
		return deps.ConfigPath()
	}
	return config.GlobalConfigPath()
}
