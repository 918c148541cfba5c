// Where: internal/infra/terraform/output_test.go
// What: Tests for terraform output decoding.
// Why: Keep the command line and both output shapes stable.
package terraform

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	output []byte
	err    error
	dir    string
	name   string
	args   []string
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir = dir
	f.name = name
	f.args = append([]string(nil), args...)
	return f.output, f.err
}

type firebaseConfig struct {
	ProjectID string `json:"projectId"`
	AppID     string `json:"appId"`
}

func TestOutputJSONRunsTerraformInDir(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"projectId":"acme-crm-stg-000123","appId":"1:2:web:3"}` + "\n")}
	client := NewClient(runner, "")

	var cfg firebaseConfig
	if err := client.OutputJSON(context.Background(), "/tmp/tf", "firebase_config", &cfg); err != nil {
		t.Fatalf("OutputJSON() error = %v", err)
	}
	if runner.dir != "/tmp/tf" || runner.name != "terraform" {
		t.Fatalf("ran %q in %q", runner.name, runner.dir)
	}
	if strings.Join(runner.args, " ") != "output -json firebase_config" {
		t.Fatalf("args = %v", runner.args)
	}
	if cfg.ProjectID != "acme-crm-stg-000123" || cfg.AppID != "1:2:web:3" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestOutputJSONAcceptsEnvelope(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{"sensitive":false,"type":["object",{}],"value":{"projectId":"p"}}`)}
	var cfg firebaseConfig
	if err := NewClient(runner, "tofu").OutputJSON(context.Background(), ".", "firebase_config", &cfg); err != nil {
		t.Fatalf("OutputJSON() error = %v", err)
	}
	if cfg.ProjectID != "p" {
		t.Fatalf("projectId = %q", cfg.ProjectID)
	}
	if runner.name != "tofu" {
		t.Fatalf("binary = %q", runner.name)
	}
}

func TestOutputJSONErrors(t *testing.T) {
	cases := []struct {
		name   string
		runner *fakeRunner
	}{
		{name: "command failure", runner: &fakeRunner{err: errors.New("exit status 1: No outputs found")}},
		{name: "malformed json", runner: &fakeRunner{output: []byte("Warning: No outputs found")}},
		{name: "empty", runner: &fakeRunner{output: []byte("  \n")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg firebaseConfig
			err := NewClient(tc.runner, "").OutputJSON(context.Background(), ".", "firebase_config", &cfg)
			if !errors.Is(err, ErrOutput) {
				t.Fatalf("error = %v, want ErrOutput", err)
			}
		})
	}
}
