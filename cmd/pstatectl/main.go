package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"pstatectl/internal/config"
	"pstatectl/internal/pstate"
)

// overrides captures which knobs were named on the command line. A knob not
// explicitly set is left alone (or left at its profile value).
type overrides struct {
	min, max   int
	noTurbo    bool
	minSet     bool
	maxSet     bool
	noTurboSet bool
}

func (o overrides) any() bool {
	return o.minSet || o.maxSet || o.noTurboSet
}

// applyOverrides lays command-line knobs over a profile's values.
func applyOverrides(v pstate.Values, o overrides) pstate.Values {
	if o.minSet {
		v.MinPerfPct = o.min
	}
	if o.maxSet {
		v.MaxPerfPct = o.max
	}
	if o.noTurboSet {
		v.NoTurbo = o.noTurbo
	}
	return v
}

func main() {
	var (
		configPath  string
		profileName string
		ov          overrides
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML tuning profiles")
	flag.StringVar(&profileName, "profile", "", "Profile to apply (needs -config; empty uses default_profile)")
	flag.IntVar(&ov.min, "min", 0, "Set min_perf_pct (0-100)")
	flag.IntVar(&ov.max, "max", 0, "Set max_perf_pct (0-100)")
	flag.BoolVar(&ov.noTurbo, "no-turbo", false, "Disable turbo boost (use -no-turbo=false to re-enable)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			ov.minSet = true
		case "max":
			ov.maxSet = true
		case "no-turbo":
			ov.noTurboSet = true
		}
	})

	h, err := pstate.New()
	if err != nil {
		if errors.Is(err, pstate.ErrNotAvailable) {
			// Documented skip-tuning path: absence is not a crash condition.
			log.Printf("intel_pstate driver not available; nothing to tune")
			return
		}
		log.Fatalf("pstate init failed: %v", err)
	}

	wantsWrite := configPath != "" || ov.any()
	if wantsWrite && !h.Writable() {
		log.Printf("warning: driver parameters not writable (setting them requires root)")
	}

	switch {
	case configPath != "":
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		prof, err := cfg.Profile(profileName)
		if err != nil {
			log.Fatalf("profile select failed: %v", err)
		}
		vals := applyOverrides(prof.Values(), ov)
		if err := h.SetValues(vals); err != nil {
			log.Fatalf("apply failed: %v", err)
		}
		log.Printf("applied min=%d max=%d no_turbo=%v", vals.MinPerfPct, vals.MaxPerfPct, vals.NoTurbo)
	case ov.any():
		if profileName != "" {
			log.Fatalf("-profile requires -config")
		}
		if ov.minSet {
			if err := h.SetMinPerfPct(ov.min); err != nil {
				log.Fatalf("set min_perf_pct failed: %v", err)
			}
		}
		if ov.maxSet {
			if err := h.SetMaxPerfPct(ov.max); err != nil {
				log.Fatalf("set max_perf_pct failed: %v", err)
			}
		}
		if ov.noTurboSet {
			if err := h.SetNoTurbo(ov.noTurbo); err != nil {
				log.Fatalf("set no_turbo failed: %v", err)
			}
		}
	default:
		if profileName != "" {
			log.Fatalf("-profile requires -config")
		}
	}

	show(h)
}

// show prints the current driver state. The informational read-only files are
// absent on some kernel versions; a missing one is skipped, any other failure
// is fatal.
func show(h *pstate.Handle) {
	vals, err := h.Values()
	if err != nil {
		log.Fatalf("read values failed: %v", err)
	}
	fmt.Printf("min_perf_pct: %d\n", vals.MinPerfPct)
	fmt.Printf("max_perf_pct: %d\n", vals.MaxPerfPct)
	fmt.Printf("no_turbo:     %v\n", vals.NoTurbo)

	if pct, err := h.TurboPct(); err == nil {
		fmt.Printf("turbo_pct:    %d\n", pct)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("read turbo_pct failed: %v", err)
	}
	if n, err := h.NumPstates(); err == nil {
		fmt.Printf("num_pstates:  %d\n", n)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("read num_pstates failed: %v", err)
	}
	if st, err := h.Status(); err == nil {
		fmt.Printf("status:       %s\n", st)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("read status failed: %v", err)
	}
}
