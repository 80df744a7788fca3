//go:build linux

package pstate

import "golang.org/x/sys/unix"

// Writable reports whether the current process can write the tunable files.
// Checked against min_perf_pct; the driver applies the same 0644-root mode to
// all writable knobs. Useful as a preflight so callers can warn about a
// missing-root condition before attempting writes.
func (h *Handle) Writable() bool {
	return unix.Access(h.path(paramMinPerfPct), unix.W_OK) == nil
}
