// Package config defines the CLI configuration structure.
package config

import "time"

// Config is the configuration for firebase-admin.
type Config struct {
	// Account credentials. Usually given as --firebaseUser/--firebasePass.
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Server is the admin server base URL.
	Server string `koanf:"server"`

	Database DatabaseConfig `koanf:"database"`

	TLS TLSConfig `koanf:"tls"`

	// Output is plain, json or yaml.
	Output string `koanf:"output"`

	// Timeout bounds each remote operation.
	Timeout time.Duration `koanf:"timeout"`

	Log LogConfig `koanf:"log"`
}

// DatabaseConfig describes how database URLs are built.
type DatabaseConfig struct {
	// URL is a format string with one %s for the database name.
	URL string `koanf:"url"`
}

// TLSConfig controls which servers are trusted.
type TLSConfig struct {
	// CA is a PEM bundle trusted in addition to the system roots.
	CA string `koanf:"ca"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // auto, json, text
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		Server:   "https://admin.firebase.com",
		Database: DatabaseConfig{URL: "https://%s.firebaseio.com"},
		Output:   "plain",
		Timeout:  30 * time.Second,
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// defaultsMap mirrors Default in the nested form koanf expects.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"server":   d.Server,
		"database": map[string]any{"url": d.Database.URL},
		"output":   d.Output,
		"timeout":  d.Timeout.String(),
		"log": map[string]any{
			"level":  d.Log.Level,
			"format": d.Log.Format,
		},
	}
}
