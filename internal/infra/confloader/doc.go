// Package confloader loads layered configuration with koanf.
//
// Sources, lowest priority first:
//
//  1. Defaults supplied as a map
//  2. A YAML configuration file (optional; a missing file is skipped)
//  3. Environment variables under a prefix (FIREBASE_ADMIN_ by default)
//
// Command-line flags are applied on top by the caller with LoadMap.
package confloader
