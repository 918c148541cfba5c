// Where: internal/command/test_helpers_test.go
// What: Shared fixtures for command tests.
// Why: Run both entrypoints without a terminal, real terraform, or user config.
package command

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/poruru-code/appgen/internal/infra/interaction"
)

type fakeRunner struct {
	output []byte
	err    error
	calls  int
	dirs   []string
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, _ string, _ ...string) ([]byte, error) {
	f.calls++
	f.dirs = append(f.dirs, dir)
	return f.output, f.err
}

func testDeps(t *testing.T, workingDir string) (Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("APPGEN_REGION", "")
	t.Setenv("APPGEN_BILLING_ACCOUNT_ID", "")
	t.Setenv("APPGEN_COPYRIGHT_HOLDER", "")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	var out, errOut bytes.Buffer
	deps := Dependencies{
		Out:        &out,
		ErrOut:     &errOut,
		WorkingDir: workingDir,
		RequireTTY: func() error { return interaction.ErrNotInteractive },
		Suffix:     func() int { return 123 },
		ConfigPath: func() (string, error) { return configPath, nil },
		Runner:     &fakeRunner{},
	}
	return deps, &out, &errOut
}
