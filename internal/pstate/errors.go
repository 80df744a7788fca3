package pstate

import (
	"errors"
	"fmt"
)

// ErrNotAvailable is returned by New when the intel_pstate control directory
// does not exist (module not loaded, unsupported CPU, or kernel built without
// the driver). Callers are expected to branch on it with errors.Is and treat
// it as "tuning unsupported here", not as a fatal condition.
var ErrNotAvailable = errors.New("pstate: intel_pstate driver not available")

// MalformedValueError reports that a parameter file was read successfully but
// its content did not parse into the expected type or did not match a known
// status string. It is deliberately distinct from the wrapped I/O errors the
// read path returns: malformed content indicates a kernel version mismatch,
// not an environmental failure, and is never replaced with a default value.
type MalformedValueError struct {
	Param string
	Raw   string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("pstate: %s: malformed value %q", e.Param, e.Raw)
}

// InvalidArgumentError reports a write value outside the parameter's valid
// domain. The write is rejected before any I/O is attempted, so the kernel
// state is untouched.
type InvalidArgumentError struct {
	Param string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("pstate: %s: value %d out of range [0, 100]", e.Param, e.Value)
}
