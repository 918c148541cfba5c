// Where: internal/usecase/generate/generate.go
// What: App generator workflow orchestration.
// Why: Run collect -> derive -> plan -> render -> write -> summary without CLI concerns.
package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/domain/scaffold"
	"github.com/poruru-code/appgen/internal/domain/template"
	"github.com/poruru-code/appgen/internal/infra/answersfile"
	"github.com/poruru-code/appgen/internal/infra/config"
	"github.com/poruru-code/appgen/internal/infra/fileops"
	"github.com/poruru-code/appgen/internal/infra/interaction"
	"github.com/poruru-code/appgen/internal/infra/ui"
)

var (
	errOutputDirRequired    = errors.New("output directory is required")
	errTemplatesNotFound    = errors.New("templates are not configured")
	errConsoleNotConfigured = errors.New("console is not configured")
)

// Request captures the inputs of a single generator run.
type Request struct {
	OutputDir    string
	AnswersFile  string
	Force        bool
	DryRun       bool
	SaveDefaults bool
}

// Workflow executes the generator orchestration steps.
type Workflow struct {
	Prompter   interaction.Prompter
	Templates  fs.FS
	UI         *ui.Console
	Suffix     answers.SuffixSource
	ConfigPath string
	// RequireTTY guards interactive collection; nil means prompts are always allowed.
	RequireTTY func() error
}

// renderedFile is a fully rendered Action waiting to be written.
type renderedFile struct {
	dest    string
	content []byte
}

// Run executes the workflow. Any collection, render, or conflict failure aborts
// before the first write. A write failure aborts the remaining writes; files
// already written are left in place.
func (w Workflow) Run(req Request) (answers.Context, error) {
	if strings.TrimSpace(req.OutputDir) == "" {
		return answers.Context{}, errOutputDirRequired
	}
	if w.Templates == nil {
		return answers.Context{}, errTemplatesNotFound
	}
	if w.UI == nil {
		return answers.Context{}, errConsoleNotConfigured
	}
	outputDir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return answers.Context{}, fmt.Errorf("resolve output dir: %w", err)
	}

	cfg, err := w.loadConfig()
	if err != nil {
		return answers.Context{}, err
	}

	a, err := w.answers(req, cfg)
	if err != nil {
		return answers.Context{}, err
	}

	ctx := answers.Derive(a, w.Suffix)
	slog.Info("derived project ids", "staging", ctx.StagingProjectID, "production", ctx.ProductionProjectID)

	actions := scaffold.BuildActions(ctx)
	files, err := w.render(actions, ctx, outputDir, req.Force)
	if err != nil {
		return ctx, err
	}

	if req.DryRun {
		w.UI.Header("📝", fmt.Sprintf("Dry run: %d files would be written to %s", len(files), outputDir))
		for _, f := range files {
			w.UI.ItemPlain(relative(outputDir, f.dest))
		}
		return ctx, nil
	}

	for _, f := range files {
		if err := fileops.WriteNewFile(f.dest, f.content, req.Force); err != nil {
			return ctx, err
		}
		slog.Debug("wrote file", "path", f.dest)
	}
	w.UI.Lines(scaffold.SummaryLines(ctx, outputDir))

	if req.SaveDefaults {
		w.saveConfig(cfg, a)
	}
	return ctx, nil
}

func (w Workflow) answers(req Request, cfg config.GlobalConfig) (answers.Answers, error) {
	defaults := cfg.AnswerDefaults()
	if req.AnswersFile != "" {
		return answersfile.Load(req.AnswersFile, defaults)
	}
	if w.RequireTTY != nil {
		if err := w.RequireTTY(); err != nil {
			return answers.Answers{}, err
		}
	}
	return Collect(w.Prompter, w.UI, defaults, cfg.RecentRegions)
}

// render resolves every file Action into bytes before anything touches disk.
func (w Workflow) render(actions []scaffold.Action, ctx answers.Context, outputDir string, force bool) ([]renderedFile, error) {
	renderer := template.NewRenderer(w.Templates)
	data := ctx.TemplateData()
	files := make([]renderedFile, 0, len(actions))
	for _, action := range scaffold.FileActions(actions) {
		rel, err := template.RenderString(action.Path, data)
		if err != nil {
			return nil, fmt.Errorf("resolve destination %s: %w", action.Path, err)
		}
		dest := filepath.Join(outputDir, filepath.FromSlash(rel))
		if !force && fileops.FileOrDirExists(dest) {
			return nil, fmt.Errorf("%w: %s", fileops.ErrExists, dest)
		}
		content, err := renderer.Render(action.Template, data)
		if err != nil {
			return nil, err
		}
		slog.Debug("rendered template", "template", action.Template, "dest", rel)
		files = append(files, renderedFile{dest: dest, content: content})
	}
	return files, nil
}

func (w Workflow) loadConfig() (config.GlobalConfig, error) {
	if w.ConfigPath == "" {
		return config.DefaultGlobalConfig(), nil
	}
	cfg, err := config.LoadGlobalConfig(w.ConfigPath)
	if err != nil {
		return config.GlobalConfig{}, err
	}
	return cfg, nil
}

// saveConfig persists reusable answers. Failures only warn; the app is already generated.
func (w Workflow) saveConfig(cfg config.GlobalConfig, a answers.Answers) {
	if w.ConfigPath == "" {
		return
	}
	if err := config.SaveGlobalConfig(w.ConfigPath, cfg.Remember(a)); err != nil {
		w.UI.Warn(fmt.Sprintf("failed to save defaults: %v", err))
	}
}

func relative(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
