// Package config defines the CLI configuration structure.
package config

import (
	"os"
	"path/filepath"

	"github.com/goggledefogger/firebase-admin/internal/infra/confloader"
)

// EnvPrefix is the prefix of the environment variables Load reads.
// FIREBASE_ADMIN_DATABASE_URL sets database.url.
const EnvPrefix = "FIREBASE_ADMIN_"

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".firebase-admin", "cli.yaml")
}

// Load builds the configuration from defaults, the YAML file at path (the
// default path when empty) and FIREBASE_ADMIN_* environment variables.
// overrides, typically the flags the user set, win over everything.
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	loader := confloader.NewLoader(
		confloader.WithEnvPrefix(EnvPrefix),
		confloader.WithConfigFile(path),
		confloader.WithDefaults(defaultsMap()),
	)

	cfg := &Config{}
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
