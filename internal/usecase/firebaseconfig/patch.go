// Where: internal/usecase/firebaseconfig/patch.go
// What: Apply terraform's Firebase web config to generated environment files.
// Why: Close the loop between `terraform apply` and the frontend sources.
package firebaseconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	domain "github.com/poruru-code/appgen/internal/domain/firebaseconfig"
	"github.com/poruru-code/appgen/internal/infra/fileops"
	"github.com/poruru-code/appgen/internal/infra/ui"
	"github.com/poruru-code/appgen/internal/meta"
)

const applyHint = `Make sure you have run "terraform apply" first.`

// OutputReader reads a named JSON output from a terraform working directory.
type OutputReader interface {
	OutputJSON(ctx context.Context, dir, name string, target any) error
}

// Request describes one patcher invocation.
type Request struct {
	ProjectRoot  string
	AppName      string
	Environments []domain.Environment
	Region       string
}

// Patcher rewrites environment files from terraform outputs.
type Patcher struct {
	Terraform OutputReader
	UI        *ui.Console
}

// TerraformDir is the per-environment terraform working directory.
func TerraformDir(root, appName string, env domain.Environment) string {
	return filepath.Join(root, filepath.FromSlash(meta.TerraformEnvironmentsDir), fmt.Sprintf("%s-%s", appName, env))
}

// EnvFile is the frontend source patched for env.
func EnvFile(root string, env domain.Environment) string {
	name := "environment.ts"
	if env == domain.Production {
		name = "environment.prod.ts"
	}
	return filepath.Join(root, filepath.FromSlash(meta.FrontendEnvironmentsDir), name)
}

// Run patches every requested environment in order and reports whether at least
// one succeeded. Per-environment failures are printed, never returned.
func (p Patcher) Run(ctx context.Context, req Request) bool {
	p.UI.Info(fmt.Sprintf("Updating Firebase config for: %s", req.AppName))
	p.UI.Info(fmt.Sprintf("Region: %s", req.Region))

	succeeded := false
	for _, env := range req.Environments {
		if p.runEnvironment(ctx, req, env) {
			succeeded = true
		}
	}

	if succeeded {
		p.UI.Info("\nFirebase configuration successfully applied!")
	} else {
		p.UI.Error("\nFailed to update some environment files.")
	}
	return succeeded
}

func (p Patcher) runEnvironment(ctx context.Context, req Request, env domain.Environment) bool {
	dir := TerraformDir(req.ProjectRoot, req.AppName, env)
	if err := checkTerraformDir(dir); err != nil {
		p.UI.Error(fmt.Sprintf("  Terraform directory not found: %s", dir))
		return false
	}

	p.UI.Info(fmt.Sprintf("\nFetching Firebase config from Terraform (%s)...", env))
	cfg, err := p.fetchConfig(ctx, dir)
	if err != nil {
		p.reportError(env, err)
		return false
	}
	p.UI.ItemPlain("Firebase config retrieved:")
	p.UI.Item("projectId", cfg.ProjectID)
	p.UI.Item("appId", cfg.AppID)
	p.UI.Item("authDomain", cfg.AuthDomain)

	path := EnvFile(req.ProjectRoot, env)
	if err := checkEnvFile(path); err != nil {
		p.UI.Error(fmt.Sprintf("  Environment file not found: %s", path))
		return false
	}
	if err := applyConfig(path, cfg, env, req.Region); err != nil {
		p.reportError(env, err)
		return false
	}
	p.UI.ItemPlain(fmt.Sprintf("Updated: %s", path))
	return true
}

func (p Patcher) reportError(env domain.Environment, err error) {
	slog.Debug("environment patch failed", "env", env, "error", err)
	p.UI.Error(fmt.Sprintf("  Error: %v", err))
	p.UI.Error("  " + applyHint)
}

// PatchEnvironment runs the single-environment steps without console output:
// directory check, terraform output, file check, rewrite. It returns the
// applied config and patched file.
func (p Patcher) PatchEnvironment(
	ctx context.Context,
	root, appName string,
	env domain.Environment,
	region string,
) (domain.Config, string, error) {
	dir := TerraformDir(root, appName, env)
	if err := checkTerraformDir(dir); err != nil {
		return domain.Config{}, "", err
	}
	cfg, err := p.fetchConfig(ctx, dir)
	if err != nil {
		return domain.Config{}, "", err
	}
	path := EnvFile(root, env)
	if err := checkEnvFile(path); err != nil {
		return cfg, "", err
	}
	if err := applyConfig(path, cfg, env, region); err != nil {
		return cfg, "", err
	}
	return cfg, path, nil
}

func checkTerraformDir(dir string) error {
	if !fileops.DirExists(dir) {
		return fmt.Errorf("%w: %s", domain.ErrDirNotFound, dir)
	}
	return nil
}

func checkEnvFile(path string) error {
	if !fileops.FileExists(path) {
		return fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	return nil
}

func (p Patcher) fetchConfig(ctx context.Context, dir string) (domain.Config, error) {
	if p.Terraform == nil {
		return domain.Config{}, errors.New("terraform client is not configured")
	}
	var raw json.RawMessage
	if err := p.Terraform.OutputJSON(ctx, dir, meta.FirebaseConfigOutput, &raw); err != nil {
		return domain.Config{}, err
	}
	cfg, err := domain.DecodeConfig(raw)
	if err != nil {
		return domain.Config{}, err
	}
	slog.Debug("firebase config retrieved", "dir", dir, "projectId", cfg.ProjectID)
	return cfg, nil
}

func applyConfig(path string, cfg domain.Config, env domain.Environment, region string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read environment file: %w", err)
	}
	return fileops.ReplaceFile(path, domain.Patch(string(content), cfg, env, region))
}
