// Package output renders command results for firebase-admin.
//
//   - formatter.go: Format names and the Formatter interface
//   - plain.go: human-readable lines (the default)
//   - json.go: indented JSON
//   - yaml.go: YAML via gopkg.in/yaml.v3
package output
