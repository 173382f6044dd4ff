package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML LeapConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultLeapConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", fromYAML, DefaultLeapConfig())
	}
	if err := DefaultLeapConfig().Validate(); err != nil {
		t.Errorf("DefaultLeapConfig().Validate() = %v, expected nil", err)
	}
}

func TestLoadLeapCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leap.yaml")
	data := []byte("hero:\n  max_health: 7\ntiming:\n  spawn_period_ms: 500\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadLeap(path)
	if err != nil {
		t.Fatalf("LoadLeap() failed: %v", err)
	}
	if cfg.Hero.MaxHealth != 7 {
		t.Errorf("MaxHealth = %d, expected 7", cfg.Hero.MaxHealth)
	}
	if cfg.Timing.SpawnPeriodMS != 500 {
		t.Errorf("SpawnPeriodMS = %d, expected 500", cfg.Timing.SpawnPeriodMS)
	}
	// Keys absent from the file keep their defaults
	if cfg.Progress.TopLevel != 100 {
		t.Errorf("TopLevel = %d, expected 100", cfg.Progress.TopLevel)
	}
}

func TestLoadLeapCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLeap(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLeap(missing) expected error, got nil")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("hero: [not, a, map"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadLeap(bad); err == nil {
		t.Error("LoadLeap(bad) expected error, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LeapConfig)
	}{
		{"weights length mismatch", func(c *LeapConfig) { c.Terrain.Weights = []int{1, 2, 3} }},
		{"unknown kind", func(c *LeapConfig) { c.Terrain.Kinds[0] = "lava" }},
		{"duplicate kind", func(c *LeapConfig) { c.Terrain.Kinds[1] = KindCommon }},
		{"negative weight", func(c *LeapConfig) { c.Terrain.Weights[2] = -1 }},
		{"zero total weight", func(c *LeapConfig) { c.Terrain.Weights = make([]int, len(c.Terrain.Kinds)) }},
		{"no kinds", func(c *LeapConfig) { c.Terrain.Kinds, c.Terrain.Weights = nil, nil }},
		{"zero field", func(c *LeapConfig) { c.Field.Height = 0 }},
		{"terrain wider than shaft", func(c *LeapConfig) { c.Terrain.Width = c.Field.Width }},
		{"zero threshold", func(c *LeapConfig) { c.Physics.CollisionThreshold = 0 }},
		{"zero fall speed", func(c *LeapConfig) { c.Physics.FallSpeed = 0 }},
		{"fall too fast to land", func(c *LeapConfig) { c.Physics.FallSpeed = 0.75 }},
		{"threshold below one tick of fall", func(c *LeapConfig) { c.Physics.CollisionThreshold = 0.2 }},
		{"zero health", func(c *LeapConfig) { c.Hero.MaxHealth = 0 }},
		{"start inside wall", func(c *LeapConfig) { c.Hero.StartX = 0 }},
		{"zero spawn period", func(c *LeapConfig) { c.Timing.SpawnPeriodMS = 0 }},
		{"zero top level", func(c *LeapConfig) { c.Progress.TopLevel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLeapConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected wrapped ErrInvalid", err)
			}
		})
	}
}

func TestApplyLeapPreset(t *testing.T) {
	base := DefaultLeapConfig()

	easy := DefaultLeapConfig()
	ApplyLeapPreset(&easy, DifficultyEasy)
	if easy.Hero.MaxHealth <= base.Hero.MaxHealth {
		t.Errorf("easy MaxHealth = %d, expected more than %d", easy.Hero.MaxHealth, base.Hero.MaxHealth)
	}
	if easy.Weight(KindSpike) >= base.Weight(KindSpike) {
		t.Errorf("easy spike weight = %d, expected less than %d", easy.Weight(KindSpike), base.Weight(KindSpike))
	}

	hard := DefaultLeapConfig()
	ApplyLeapPreset(&hard, DifficultyHard)
	if hard.Hero.MaxHealth >= base.Hero.MaxHealth {
		t.Errorf("hard MaxHealth = %d, expected less than %d", hard.Hero.MaxHealth, base.Hero.MaxHealth)
	}
	if hard.Weight(KindSpike) <= base.Weight(KindSpike) {
		t.Errorf("hard spike weight = %d, expected more than %d", hard.Weight(KindSpike), base.Weight(KindSpike))
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard.Validate() = %v, expected nil", err)
	}

	for _, p := range []DifficultyPreset{DifficultyNormal, DifficultyFixed, ""} {
		cfg := DefaultLeapConfig()
		ApplyLeapPreset(&cfg, p)
		if !reflect.DeepEqual(cfg, base) {
			t.Errorf("preset %q changed the config", p)
		}
	}
}

func TestApplyLeapPresetDoesNotAlias(t *testing.T) {
	cfg := DefaultLeapConfig()
	shared := cfg.Terrain.Weights
	ApplyLeapPreset(&cfg, DifficultyHard)
	if shared[1] != 20 {
		t.Errorf("caller's weights mutated: %v", shared)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"", "", true},
		{"insane", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		ms, rate, want int
	}{
		{1000, 60, 60},
		{3000, 60, 180},
		{1000, 30, 30},
		{10, 60, 1},
		{0, 60, 1},
		{1000, 0, 60},
		{1001, 60, 61},
	}
	for _, tt := range tests {
		if got := Ticks(tt.ms, tt.rate); got != tt.want {
			t.Errorf("Ticks(%d, %d) = %d, expected %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}

func TestSpawnBounds(t *testing.T) {
	cfg := DefaultLeapConfig()
	left, right := cfg.SpawnBounds()
	if left != 8 || right != 56 {
		t.Errorf("SpawnBounds() = (%v, %v), expected (8, 56)", left, right)
	}
}
