//go:build !linux

package pstate

// Writable is always false off Linux: intel_pstate is a Linux driver.
func (h *Handle) Writable() bool {
	return false
}
