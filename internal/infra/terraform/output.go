// Where: internal/infra/terraform/output.go
// What: Read named outputs from a terraform working directory.
// Why: The Firebase web config only exists in terraform state after `terraform apply`.
package terraform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poruru-code/appgen/internal/infra/shell"
	"github.com/poruru-code/appgen/internal/meta"
)

// ErrOutput marks failures to obtain or decode a terraform output.
var ErrOutput = errors.New("terraform output failed")

// Client runs the terraform CLI.
type Client struct {
	Runner shell.CommandRunner
	Binary string
}

// NewClient returns a Client for binary, defaulting to `terraform`.
func NewClient(runner shell.CommandRunner, binary string) *Client {
	if runner == nil {
		runner = shell.ExecRunner{}
	}
	if binary == "" {
		binary = meta.TerraformBinary
	}
	return &Client{Runner: runner, Binary: binary}
}

// OutputJSON runs `terraform output -json <name>` in dir and decodes the value into
// target. The bare value and the `{"value": ...}` wrapper are both accepted.
func (c *Client) OutputJSON(ctx context.Context, dir, name string, target any) error {
	raw, err := c.Runner.RunOutput(ctx, dir, c.Binary, "output", "-json", name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	payload, err := unwrapOutput(raw)
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrOutput, name, err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrOutput, name, err)
	}
	return nil
}

// outputEnvelope is the shape of a single output in `terraform output -json`.
type outputEnvelope struct {
	Value     json.RawMessage `json:"value"`
	Type      json.RawMessage `json:"type"`
	Sensitive bool            `json:"sensitive"`
}

func unwrapOutput(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty output")
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("output is not valid JSON")
	}
	var envelope outputEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Value) > 0 && len(envelope.Type) > 0 {
		return envelope.Value, nil
	}
	return trimmed, nil
}
