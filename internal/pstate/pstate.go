// Package pstate reads and writes the Linux intel_pstate driver parameters
// exposed under /sys/devices/system/cpu/intel_pstate.
//
// The driver's control surface is a set of independent text pseudo-files, and
// the kernel offers no multi-file transaction primitive; the API mirrors that
// with one-parameter-at-a-time operations. Nothing is cached: every read
// reflects the current kernel state and every write takes effect immediately,
// subject to the kernel's own validation. Setting parameters requires root.
package pstate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// sysfsBase is the intel_pstate control directory.
var sysfsBase = "/sys/devices/system/cpu/intel_pstate"

// Handle is a live connection to the intel_pstate control surface. Its only
// state is the base directory path; no file descriptors are held between
// calls, and multiple handles observe and mutate the same kernel state.
type Handle struct {
	base string
}

// New attempts to attach to the intel_pstate driver. It returns
// ErrNotAvailable when the control directory does not exist. Individual
// parameter files are not probed here; a file missing on an older kernel
// surfaces lazily on first access.
func New() (*Handle, error) {
	return NewAt(sysfsBase)
}

// NewAt attaches to an intel_pstate control surface rooted at dir. Tests
// substitute an equivalent directory structure this way.
func NewAt(dir string) (*Handle, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, ErrNotAvailable
	}
	return &Handle{base: dir}, nil
}

// MinPerfPct reads the minimum performance percent.
func (h *Handle) MinPerfPct() (int, error) {
	return h.readInt(paramMinPerfPct)
}

// SetMinPerfPct sets the minimum performance percent. Values outside [0, 100]
// are rejected with InvalidArgumentError before any I/O. The kernel may still
// reject an in-range value that crosses max_perf_pct; that surfaces as a
// write error.
func (h *Handle) SetMinPerfPct(pct int) error {
	return h.writeInt(paramMinPerfPct, pct)
}

// MaxPerfPct reads the maximum performance percent.
func (h *Handle) MaxPerfPct() (int, error) {
	return h.readInt(paramMaxPerfPct)
}

// SetMaxPerfPct sets the maximum performance percent, range [0, 100].
func (h *Handle) SetMaxPerfPct(pct int) error {
	return h.writeInt(paramMaxPerfPct, pct)
}

// NoTurbo reports whether turbo boost is disabled.
func (h *Handle) NoTurbo() (bool, error) {
	raw, err := h.read(paramNoTurbo)
	if err != nil {
		return false, err
	}
	switch raw {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &MalformedValueError{Param: string(paramNoTurbo), Raw: raw}
}

// SetNoTurbo disables turbo boost when v is true.
func (h *Handle) SetNoTurbo(v bool) error {
	val := "0"
	if v {
		val = "1"
	}
	return h.write(paramNoTurbo, val)
}

// TurboPct reads the percent of the performance range attributable to turbo
// frequencies. Read-only.
func (h *Handle) TurboPct() (int, error) {
	return h.readInt(paramTurboPct)
}

// NumPstates reads the number of P-states the hardware supports. Read-only.
func (h *Handle) NumPstates() (int, error) {
	return h.readInt(paramNumPstates)
}

// Status reads the driver operating mode. Content is matched case-sensitively
// against the known set; anything else is a MalformedValueError, never a
// guessed default.
func (h *Handle) Status() (Status, error) {
	raw, err := h.read(paramStatus)
	if err != nil {
		return "", err
	}
	s, ok := parseStatus(raw)
	if !ok {
		return "", &MalformedValueError{Param: string(paramStatus), Raw: raw}
	}
	return s, nil
}

func (h *Handle) path(p param) string {
	return filepath.Join(h.base, string(p))
}

func (h *Handle) read(p param) (string, error) {
	b, err := os.ReadFile(h.path(p))
	if err != nil {
		return "", fmt.Errorf("pstate: read %s: %w", p, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (h *Handle) readInt(p param) (int, error) {
	if paramTable[p].enc != encInt {
		return 0, fmt.Errorf("pstate: %s is not an integer parameter", p)
	}
	raw, err := h.read(p)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedValueError{Param: string(p), Raw: raw}
	}
	return n, nil
}

func (h *Handle) writeInt(p param, v int) error {
	if v < 0 || v > 100 {
		return &InvalidArgumentError{Param: string(p), Value: v}
	}
	return h.write(p, strconv.Itoa(v))
}

// write performs a single open/write/close on the parameter file with one
// trailing newline, matching how the kernel itself terminates these lines.
// O_WRONLY without O_TRUNC or O_CREATE: sysfs attributes reject truncation
// flags even when mode bits allow writes, yielding confusing EACCES at open.
func (h *Handle) write(p param, value string) error {
	if !paramTable[p].writable {
		return fmt.Errorf("pstate: %s is read-only", p)
	}
	f, err := os.OpenFile(h.path(p), os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("pstate: open %s: %w", p, err)
	}
	_, werr := f.WriteString(value + "\n")
	cerr := f.Close()
	if werr != nil {
		if cerr != nil {
			return fmt.Errorf("pstate: write %s: %w", p, errors.Join(werr, cerr))
		}
		return fmt.Errorf("pstate: write %s: %w", p, werr)
	}
	if cerr != nil {
		return fmt.Errorf("pstate: write %s: %w", p, cerr)
	}
	return nil
}
