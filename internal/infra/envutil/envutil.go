// Where: internal/infra/envutil/envutil.go
// What: Prefixed environment variables and .env loading.
// Why: Let APPGEN_* variables (from the shell or a .env file) override user defaults.
package envutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poruru-code/appgen/internal/meta"
)

// Suffixes of the recognized APPGEN_* variables.
const (
	SuffixRegion           = "REGION"
	SuffixBillingAccountID = "BILLING_ACCOUNT_ID"
	SuffixCopyrightHolder  = "COPYRIGHT_HOLDER"
	SuffixConfigDir        = "CONFIG_DIR"
)

// HostEnvKey combines the CLI prefix with suffix.
// Example: HostEnvKey("REGION") returns "APPGEN_REGION".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv returns the trimmed value of the prefixed variable.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// LoadDotEnv loads path when given, else ./.env when it exists in dir.
// Variables already set in the process environment win.
func LoadDotEnv(dir, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	candidate := filepath.Join(dir, ".env")
	if _, err := os.Stat(candidate); err != nil {
		return nil
	}
	if err := godotenv.Load(candidate); err != nil {
		return fmt.Errorf("load env file %s: %w", candidate, err)
	}
	return nil
}
