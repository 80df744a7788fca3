package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_RequiresProfiles(t *testing.T) {
	path := writeTempConfig(t, "default_profile: ''\n")
	_, err := Load(path)
	requireErrEq(t, err, "profiles is required")
}

func TestLoad_EmptyFileRequiresProfiles(t *testing.T) {
	path := writeTempConfig(t, "")
	_, err := Load(path)
	requireErrEq(t, err, "profiles is required")
}

func TestLoad_MaxDefaultsTo100(t *testing.T) {
	path := writeTempConfig(t, "profiles:\n  battery:\n    min_perf_pct: 5\n    no_turbo: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	p := cfg.Profiles["battery"]
	if p.MaxPerfPct != 100 {
		t.Fatalf("max_perf_pct=%d want 100", p.MaxPerfPct)
	}
	if !p.NoTurbo || p.MinPerfPct != 5 {
		t.Fatalf("profile=%+v want min=5 no_turbo=true", p)
	}
}

func TestLoad_RangeValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "MinTooHigh",
			body: "profiles:\n  p:\n    min_perf_pct: 101\n",
			want: "profiles.p: min_perf_pct 101 out of range [0, 100]",
		},
		{
			name: "MinNegative",
			body: "profiles:\n  p:\n    min_perf_pct: -5\n",
			want: "profiles.p: min_perf_pct -5 out of range [0, 100]",
		},
		{
			name: "MaxTooHigh",
			body: "profiles:\n  p:\n    max_perf_pct: 150\n",
			want: "profiles.p: max_perf_pct 150 out of range [0, 100]",
		},
		{
			name: "MinExceedsMax",
			body: "profiles:\n  p:\n    min_perf_pct: 80\n    max_perf_pct: 60\n",
			want: "profiles.p: min_perf_pct 80 exceeds max_perf_pct 60",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.body)
			_, err := Load(path)
			requireErrEq(t, err, tc.want)
		})
	}
}

func TestLoad_DefaultProfileMustExist(t *testing.T) {
	path := writeTempConfig(t, "default_profile: missing\nprofiles:\n  p:\n    min_perf_pct: 0\n")
	_, err := Load(path)
	requireErrEq(t, err, `default_profile "missing" is not a defined profile`)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeTempConfig(t, "profiles:\n  p:\n    min_perf_pct: 0\n    governor: powersave\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected unknown-field error, got nil")
	}
}

func TestProfile_Lookup(t *testing.T) {
	path := writeTempConfig(t, "default_profile: balanced\nprofiles:\n  balanced:\n    min_perf_pct: 10\n  battery:\n    max_perf_pct: 60\n    no_turbo: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	p, err := cfg.Profile("")
	if err != nil {
		t.Fatalf("Profile(\"\") error: %v", err)
	}
	if p.MinPerfPct != 10 {
		t.Fatalf("default profile min=%d want 10", p.MinPerfPct)
	}

	p, err = cfg.Profile("battery")
	if err != nil {
		t.Fatalf("Profile(battery) error: %v", err)
	}
	v := p.Values()
	if v.MaxPerfPct != 60 || !v.NoTurbo {
		t.Fatalf("values=%+v want max=60 no_turbo=true", v)
	}

	if _, err := cfg.Profile("nope"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}

func TestProfile_NoDefaultSet(t *testing.T) {
	path := writeTempConfig(t, "profiles:\n  p:\n    min_perf_pct: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, err := cfg.Profile(""); err == nil {
		t.Fatalf("expected error when no default_profile is set")
	}
}
