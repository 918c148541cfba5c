// Where: internal/command/app.go
// What: Shared CLI dependencies and entrypoint helpers.
// Why: Keep both binaries testable through injected streams, prompter, and runner.
package command

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/infra/envutil"
	"github.com/poruru-code/appgen/internal/infra/interaction"
	"github.com/poruru-code/appgen/internal/infra/logging"
	"github.com/poruru-code/appgen/internal/infra/shell"
	"github.com/poruru-code/appgen/internal/infra/ui"
	"github.com/poruru-code/appgen/internal/version"
)

// Dependencies holds everything a command needs from the process.
// WorkingDir replaces implicit use of the process cwd.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	WorkingDir string
	Prompter   interaction.Prompter
	// RequireTTY reports whether interactive prompts can be shown.
	RequireTTY func() error
	Templates  fs.FS
	Suffix     answers.SuffixSource
	ConfigPath func() (string, error)
	// Runner executes terraform; nil uses the real process runner.
	Runner shell.CommandRunner
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.ErrOut == nil {
		d.ErrOut = os.Stderr
	}
	if d.WorkingDir == "" {
		if wd, err := os.Getwd(); err == nil {
			d.WorkingDir = wd
		}
	}
	if d.Prompter == nil {
		d.Prompter = interaction.HuhPrompter{}
	}
	if d.RequireTTY == nil {
		d.RequireTTY = func() error { return interaction.RequireTerminal(os.Stdin) }
	}
	return d
}

// CommonFlags are shared by both binaries.
type CommonFlags struct {
	EnvFile string `name:"env-file" help:"Path to .env file (default: .env in the working directory when present)"`
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)"`
}

// prepare loads the env file and configures logging before any work starts.
func (f CommonFlags) prepare(deps Dependencies) error {
	if err := envutil.LoadDotEnv(deps.WorkingDir, optionalPath(deps.WorkingDir, f.EnvFile)); err != nil {
		return err
	}
	logging.Setup(deps.ErrOut, f.Verbose)
	return nil
}

func newConsole(deps Dependencies) *ui.Console {
	return ui.NewWithStreams(deps.Out, deps.ErrOut, true)
}

// resolvePath anchors relative paths at the working directory.
func resolvePath(workingDir, path string) string {
	if path == "" {
		return workingDir
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workingDir, path)
}

// optionalPath resolves path against workingDir and keeps empty as empty.
func optionalPath(workingDir, path string) string {
	if path == "" {
		return ""
	}
	return resolvePath(workingDir, path)
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	ui.New(out).Info(version.GetVersion())
	return 0
}
