// Package config provides CLI configuration for firebase-admin.
//
//   - spec.go: Config struct (~/.firebase-admin/cli.yaml)
//   - loader.go: loading defaults, file, environment and flag overrides
//   - verify.go: validation of the loaded configuration
//
// Configuration includes the account credentials, the admin server and
// database URL format, the output format and log settings.
package config
