// Package diag accumulates human-readable diagnostic lines across a single
// request's lifetime. It replaces the original implementation's
// appendError/failWithError/handleFailure protocol, where a request handler
// kept writing to one output stream and flipped a "failed" flag the moment
// anything went wrong, but let already-collected diagnostics survive to be
// printed alongside whatever partial result it could still produce.
package diag

import (
	"fmt"
	"strings"
)

// Buffer collects diagnostic lines for one request and tracks whether any
// of them was fatal. A Buffer is ready to use at its zero value.
type Buffer struct {
	lines  []string
	failed bool
}

// Append records a non-fatal diagnostic line.
func (b *Buffer) Append(format string, args ...interface{}) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// Fail records a diagnostic line and marks the request as failed. Failing a
// Buffer does not stop the caller from appending further diagnostics or
// from still producing partial output; it only changes ExitCode.
func (b *Buffer) Fail(format string, args ...interface{}) {
	b.Append(format, args...)
	b.failed = true
}

// Failed reports whether Fail has been called at least once.
func (b *Buffer) Failed() bool {
	return b.failed
}

// ExitCode returns 1 if the buffer has recorded a failure, 0 otherwise —
// the process exit code a CLI caller should use.
func (b *Buffer) ExitCode() int {
	if b.failed {
		return 1
	}

	return 0
}

// String joins every recorded line with newlines, in the order recorded.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Empty reports whether no diagnostic has been recorded at all.
func (b *Buffer) Empty() bool {
	return len(b.lines) == 0
}
