package dispatch

import (
	"errors"
	"strings"
)

// UsageError reports an invocation the tree could not run. The top-level
// handler prints the usage listing followed by Messages and exits with 1.
type UsageError struct {
	Messages []string
}

func (e *UsageError) Error() string {
	if len(e.Messages) == 0 {
		return "usage"
	}
	return strings.Join(e.Messages, "\n")
}

// ExitCode returns the process exit status for a usage failure.
func (e *UsageError) ExitCode() int {
	return 1
}

// Usage returns a UsageError carrying msgs.
func Usage(msgs ...string) *UsageError {
	return &UsageError{Messages: msgs}
}

// MissingArgument reports a required positional argument that was not given.
func MissingArgument(name string) *UsageError {
	return Usage("Missing argument " + name)
}

// IsUsage reports whether err is, or wraps, a *UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
