// Where: internal/infra/config/global.go
// What: User-level defaults file load/save.
// Why: Remember region and billing account between generator runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poruru-code/appgen/internal/domain/answers"
	"github.com/poruru-code/appgen/internal/infra/envutil"
	"github.com/poruru-code/appgen/internal/meta"
	"gopkg.in/yaml.v3"
)

const currentVersion = 1

// GlobalConfig represents <UserConfigDir>/appgen/config.yaml.
type GlobalConfig struct {
	Version       int      `yaml:"version"`
	Defaults      Defaults `yaml:"defaults,omitempty"`
	RecentRegions []string `yaml:"recent_regions,omitempty"`
}

// Defaults stores last-used generator answers that are safe to reuse.
type Defaults struct {
	Region           string `yaml:"region,omitempty"`
	BillingAccountID string `yaml:"billing_account_id,omitempty"`
	CopyrightHolder  string `yaml:"copyright_holder,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: currentVersion}
}

var userConfigDir = os.UserConfigDir

// GlobalConfigPath returns the defaults file path. APPGEN_CONFIG_DIR overrides
// the platform config directory.
func GlobalConfigPath() (string, error) {
	if dir := envutil.GetHostEnv(envutil.SuffixConfigDir); dir != "" {
		return filepath.Join(dir, meta.ConfigFileName), nil
	}
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, meta.ConfigDirName, meta.ConfigFileName), nil
}

// LoadGlobalConfig reads and parses the defaults file. A missing file yields
// DefaultGlobalConfig.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = currentVersion
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create global config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}

// AnswerDefaults merges the file defaults with APPGEN_* overrides.
func (c GlobalConfig) AnswerDefaults() answers.Defaults {
	d := answers.Defaults{
		Region:           c.Defaults.Region,
		BillingAccountID: c.Defaults.BillingAccountID,
		CopyrightHolder:  c.Defaults.CopyrightHolder,
	}
	if v := envutil.GetHostEnv(envutil.SuffixRegion); v != "" {
		d.Region = v
	}
	if v := envutil.GetHostEnv(envutil.SuffixBillingAccountID); v != "" {
		d.BillingAccountID = v
	}
	if v := envutil.GetHostEnv(envutil.SuffixCopyrightHolder); v != "" {
		d.CopyrightHolder = v
	}
	return d
}

// Remember records the reusable answers of a successful run.
func (c GlobalConfig) Remember(a answers.Answers) GlobalConfig {
	c.Defaults.Region = a.Region
	c.Defaults.BillingAccountID = a.BillingAccountID
	c.RecentRegions = answers.UpdateHistory(c.RecentRegions, a.Region, answers.RecentLimit)
	return c
}
