// Package shutdown ties process termination signals to a context.
//
// A firebase-admin invocation runs one remote operation. SIGINT or SIGTERM
// cancels the context that operation runs under, and the signal is kept as
// the cancellation cause so the caller can pick the conventional exit code.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
package shutdown
