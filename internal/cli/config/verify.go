package config

import (
	"errors"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyDatabase(&cfg.Database); err != nil {
		return err
	}
	return nil
}

// verifyDatabase requires database.url to hold exactly one %s, the
// database name. A literal percent sign is written %%.
func verifyDatabase(cfg *DatabaseConfig) error {
	if cfg.URL == "" {
		return errors.New("database.url is required")
	}

	verbs := strings.ReplaceAll(cfg.URL, "%%", "")
	if strings.Count(verbs, "%") != 1 || strings.Count(verbs, "%s") != 1 {
		return errors.New("database.url must contain exactly one %s for the database name: " + cfg.URL)
	}
	return nil
}
