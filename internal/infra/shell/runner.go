// Where: internal/infra/shell/runner.go
// What: External command execution.
// Why: Keep os/exec behind an interface so workflows can be tested without real tools.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	// RunOutput runs name in dir and returns its stdout. A non-zero exit is an
	// error whose message carries the command's stderr.
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("run command", "dir", dir, "name", name, "args", args)
	output, err := cmd.Output()
	if err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return output, fmt.Errorf("run %s: %w: %s", name, err, detail)
		}
		return output, fmt.Errorf("run %s: %w", name, err)
	}
	return output, nil
}
