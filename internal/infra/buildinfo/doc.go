// Package buildinfo reports the version of the firebase-admin binary.
//
// Release builds inject values via ldflags:
//
//	go build -ldflags "-X github.com/goggledefogger/firebase-admin/internal/infra/buildinfo.Version=v1.0.0"
//
// Plain `go build` and `go install` builds fall back to the VCS stamps the
// Go toolchain embeds in the binary.
package buildinfo
