package pstate

// param names one intel_pstate control file. The string value is the file
// name under the driver base directory.
type param string

const (
	paramMinPerfPct param = "min_perf_pct"
	paramMaxPerfPct param = "max_perf_pct"
	paramNoTurbo    param = "no_turbo"
	paramTurboPct   param = "turbo_pct"
	paramNumPstates param = "num_pstates"
	paramStatus     param = "status"
)

type encoding int

const (
	encInt encoding = iota
	encBool
	encStatus
)

type paramInfo struct {
	enc      encoding
	writable bool
}

// paramTable is the single source of truth for encoding and access mode.
// The integer read path checks enc and the write path checks writable, so a
// mis-tabled parameter fails loudly instead of producing garbage. Writable
// parameters are additionally the only ones with Set methods on Handle, so a
// write to a read-only knob cannot be expressed at all.
var paramTable = map[param]paramInfo{
	paramMinPerfPct: {enc: encInt, writable: true},
	paramMaxPerfPct: {enc: encInt, writable: true},
	paramNoTurbo:    {enc: encBool, writable: true},
	paramTurboPct:   {enc: encInt, writable: false},
	paramNumPstates: {enc: encInt, writable: false},
	paramStatus:     {enc: encStatus, writable: false},
}

// Status is the operating mode reported by the driver's status file.
type Status string

const (
	StatusActive  Status = "active"
	StatusPassive Status = "passive"
	StatusOff     Status = "off"
)

func parseStatus(raw string) (Status, bool) {
	switch s := Status(raw); s {
	case StatusActive, StatusPassive, StatusOff:
		return s, true
	}
	return "", false
}
