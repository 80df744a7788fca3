package pstate

// Values is a snapshot of the three writable knobs, retrieved together or
// applied together. Applying is not transactional: each knob is an
// independent write and the first failure returns with earlier writes
// already in effect.
type Values struct {
	MinPerfPct int
	MaxPerfPct int
	NoTurbo    bool
}

// DefaultValues returns the driver's untuned posture: full performance range
// with turbo enabled.
func DefaultValues() Values {
	return Values{MinPerfPct: 0, MaxPerfPct: 100, NoTurbo: false}
}

// Values reads min_perf_pct, max_perf_pct, and no_turbo in one call.
func (h *Handle) Values() (Values, error) {
	min, err := h.MinPerfPct()
	if err != nil {
		return Values{}, err
	}
	max, err := h.MaxPerfPct()
	if err != nil {
		return Values{}, err
	}
	noTurbo, err := h.NoTurbo()
	if err != nil {
		return Values{}, err
	}
	return Values{MinPerfPct: min, MaxPerfPct: max, NoTurbo: noTurbo}, nil
}

// SetValues applies min, then max, then no_turbo.
func (h *Handle) SetValues(v Values) error {
	if err := h.SetMinPerfPct(v.MinPerfPct); err != nil {
		return err
	}
	if err := h.SetMaxPerfPct(v.MaxPerfPct); err != nil {
		return err
	}
	return h.SetNoTurbo(v.NoTurbo)
}
