// Where: internal/domain/firebaseconfig/config.go
// What: Firebase web config object and target environments.
// Why: Type the terraform `firebase_config` output before it is written into sources.
package firebaseconfig

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config is the Firebase web app configuration produced by terraform.
type Config struct {
	APIKey            string `json:"apiKey"`
	AppID             string `json:"appId"`
	AuthDomain        string `json:"authDomain"`
	MessagingSenderID string `json:"messagingSenderId"`
	StorageBucket     string `json:"storageBucket"`
	ProjectID         string `json:"projectId"`
}

// DecodeConfig reads a terraform firebase_config object. Every key must be
// present and hold a string; empty values are accepted as they are.
func DecodeConfig(data []byte) (Config, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Config{}, fmt.Errorf("decode firebase config: %w", err)
	}

	var cfg Config
	var missing []string
	for _, f := range cfg.targets() {
		raw, ok := fields[f.key]
		if !ok || string(raw) == "null" {
			missing = append(missing, f.key)
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return Config{}, fmt.Errorf("decode firebase config %s: %w", f.key, err)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("firebase config is missing %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c *Config) targets() []struct {
	key string
	dst *string
} {
	return []struct {
		key string
		dst *string
	}{
		{"apiKey", &c.APIKey},
		{"appId", &c.AppID},
		{"authDomain", &c.AuthDomain},
		{"messagingSenderId", &c.MessagingSenderID},
		{"storageBucket", &c.StorageBucket},
		{"projectId", &c.ProjectID},
	}
}

type assignment struct {
	key   string
	value string
}

// assignments lists the source keys in the order they are rewritten.
func (c Config) assignments() []assignment {
	return []assignment{
		{key: "apiKey", value: c.APIKey},
		{key: "appId", value: c.AppID},
		{key: "authDomain", value: c.AuthDomain},
		{key: "messagingSenderId", value: c.MessagingSenderID},
		{key: "storageBucket", value: c.StorageBucket},
		{key: "projectId", value: c.ProjectID},
	}
}

// Environment is a single patch target.
type Environment string

const (
	Staging    Environment = "staging"
	Production Environment = "production"
)

// Selector is the environment argument accepted on the command line.
type Selector string

const SelectAll Selector = "all"

// ParseSelector expands staging, production, or all into the environments to patch.
func ParseSelector(value string) ([]Environment, error) {
	switch Selector(value) {
	case Selector(Staging):
		return []Environment{Staging}, nil
	case Selector(Production):
		return []Environment{Production}, nil
	case SelectAll:
		return []Environment{Staging, Production}, nil
	}
	return nil, fmt.Errorf("Invalid environment: %s. Use 'staging', 'production', or 'all'.", value)
}

// APIURL is the functions base URL the frontend calls. Production points at the
// deployed function; every other environment points at the local emulator.
func APIURL(env Environment, region, projectID string) string {
	if env == Production {
		return fmt.Sprintf("https://%s-%s.cloudfunctions.net/api", region, projectID)
	}
	return fmt.Sprintf("http://localhost:5001/%s/%s/api", projectID, region)
}
