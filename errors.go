package uptime

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on operating systems with no known uptime
// mechanism. It is deterministic: on such a platform every call fails
// with it, regardless of external state.
var ErrUnsupported = errors.New("uptime: unsupported operating system")

var errBootInFuture = errors.New("kernel boot time is later than the current clock")

// SourceError reports that the OS-exposed uptime source could not be
// accessed.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("uptime: reading %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// FormatError reports that the uptime source was read but did not contain
// a parseable value. Empty content is a FormatError, not a zero uptime.
type FormatError struct {
	Content string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("uptime: invalid uptime content %q", e.Content)
}

// PlatformError reports a failure signaled by the platform API through
// its native error convention.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("uptime: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }
