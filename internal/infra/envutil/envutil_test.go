// Where: internal/infra/envutil/envutil_test.go
// What: Tests for prefixed env lookup and .env loading.
// Why: Keep override precedence predictable.
package envutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostEnvKey(t *testing.T) {
	if got := HostEnvKey(SuffixRegion); got != "APPGEN_REGION" {
		t.Fatalf("HostEnvKey() = %q", got)
	}
}

func TestLoadDotEnvFromDir(t *testing.T) {
	dir := t.TempDir()
	key := HostEnvKey(SuffixBillingAccountID)
	t.Setenv(key, "")
	os.Unsetenv(key)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=AAAAAA-BBBBBB-CCCCCC\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(dir, ""); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := GetHostEnv(SuffixBillingAccountID); got != "AAAAAA-BBBBBB-CCCCCC" {
		t.Fatalf("GetHostEnv() = %q", got)
	}
}

func TestLoadDotEnvKeepsProcessEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HostEnvKey(SuffixRegion), "us-east1")
	path := filepath.Join(dir, "custom.env")
	if err := os.WriteFile(path, []byte("APPGEN_REGION=europe-west3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(dir, path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := GetHostEnv(SuffixRegion); got != "us-east1" {
		t.Fatalf("GetHostEnv() = %q, want process value", got)
	}
}

func TestLoadDotEnvMissingExplicitFile(t *testing.T) {
	if err := LoadDotEnv(t.TempDir(), "/does/not/exist.env"); err == nil {
		t.Fatal("expected error for missing explicit env file")
	}
	if err := LoadDotEnv(t.TempDir(), ""); err != nil {
		t.Fatalf("missing implicit .env must be ignored: %v", err)
	}
}
