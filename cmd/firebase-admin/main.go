// Package main provides the entry point for firebase-admin.
package main

import (
	"context"
	"os"

	"github.com/goggledefogger/firebase-admin/internal/cli/command"
	"github.com/goggledefogger/firebase-admin/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.WithSignals(context.Background())
	code := command.RunContext(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
