package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"pstatectl/internal/pstate"
)

type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

type Profile struct {
	MinPerfPct int  `yaml:"min_perf_pct"`
	MaxPerfPct int  `yaml:"max_perf_pct"`
	NoTurbo    bool `yaml:"no_turbo"`
}

// Values converts the profile into a settings snapshot for the driver.
func (p Profile) Values() pstate.Values {
	return pstate.Values{
		MinPerfPct: p.MinPerfPct,
		MaxPerfPct: p.MaxPerfPct,
		NoTurbo:    p.NoTurbo,
	}
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.Profiles) == 0 {
		return Config{}, fmt.Errorf("profiles is required")
	}

	for name, p := range cfg.Profiles {
		// An omitted max means "uncapped"; the driver's own default.
		if p.MaxPerfPct == 0 {
			p.MaxPerfPct = 100
			cfg.Profiles[name] = p
		}
		if p.MinPerfPct < 0 || p.MinPerfPct > 100 {
			return Config{}, fmt.Errorf("profiles.%s: min_perf_pct %d out of range [0, 100]", name, p.MinPerfPct)
		}
		if p.MaxPerfPct < 0 || p.MaxPerfPct > 100 {
			return Config{}, fmt.Errorf("profiles.%s: max_perf_pct %d out of range [0, 100]", name, p.MaxPerfPct)
		}
		if p.MinPerfPct > p.MaxPerfPct {
			return Config{}, fmt.Errorf("profiles.%s: min_perf_pct %d exceeds max_perf_pct %d", name, p.MinPerfPct, p.MaxPerfPct)
		}
	}

	if cfg.DefaultProfile != "" {
		if _, ok := cfg.Profiles[cfg.DefaultProfile]; !ok {
			return Config{}, fmt.Errorf("default_profile %q is not a defined profile", cfg.DefaultProfile)
		}
	}

	return cfg, nil
}

// Profile looks up a profile by name; an empty name selects default_profile.
func (c Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return Profile{}, fmt.Errorf("no profile named and no default_profile set")
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}
