package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultBeeKindYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultBeeKindConfig() {
		t.Errorf("embedded defaults differ from DefaultBeeKindConfig():\n%+v\n%+v", cfg, DefaultBeeKindConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "physics:\n  gravity: 0.5\nspawn:\n  max_bees: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Spawn.MaxBees != 12 {
		t.Errorf("MaxBees = %d, expected 12", cfg.Spawn.MaxBees)
	}
	// Unset values keep their defaults.
	if cfg.Physics.JumpSpeed != 5 || cfg.AI.ZombeeHealth != 10 {
		t.Errorf("missing values should keep defaults, got jump %v health %d", cfg.Physics.JumpSpeed, cfg.AI.ZombeeHealth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file: expected read error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad file: expected parse error, got %v", err)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Error("a failed load should still return usable defaults")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBeeKindConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v initial=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
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
		{"", DifficultyFixed, true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDifficultyFixedKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultBeeKindConfig().Difficulty)

	for level := 0; level < 7; level++ {
		if got := d.Speed(0.25, level); got != 0.25 {
			t.Errorf("level %d: Speed = %v, expected 0.25", level, got)
		}
		if got := d.Cap(15, level); got != 15 {
			t.Errorf("level %d: Cap = %d, expected 15", level, got)
		}
		if got := d.Interval(240, level); got != 240 {
			t.Errorf("level %d: Interval = %d, expected 240", level, got)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultBeeKindConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	d := NewDifficultyManager(cfg.Difficulty)

	if !d.IsEnabled() {
		t.Fatal("easy preset should enable progression")
	}
	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %v, expected 0", d.Level(0))
	}
	if d.Level(3) != 0.5 {
		t.Errorf("Level(3) = %v, expected 0.5", d.Level(3))
	}
	if d.Level(6) != 1 || d.Level(20) != 1 {
		t.Errorf("Level should saturate at 1, got %v and %v", d.Level(6), d.Level(20))
	}

	if got := d.Speed(0.25, 6); got != 0.5 {
		t.Errorf("Speed at max = %v, expected 0.5", got)
	}
	if got := d.Cap(15, 6); got != 10 {
		t.Errorf("Cap at max = %d, expected 10", got)
	}
	if got := d.Interval(240, 6); got != 120 {
		t.Errorf("Interval at max = %d, expected 120", got)
	}
	if got := d.Cap(2, 6); got != 1 {
		t.Errorf("Cap should not drop below 1, got %d", got)
	}
	if got := d.Interval(40, 6); got != FPS {
		t.Errorf("Interval should not drop below %d, got %d", FPS, got)
	}
}

func TestDifficultyNormalStartsHarder(t *testing.T) {
	cfg := DefaultBeeKindConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.Speed(0.25, 0); math.Abs(got-0.325) > 1e-9 {
		t.Errorf("Speed = %v, expected 0.325", got)
	}
	if got := d.Cap(15, 0); got != 14 {
		t.Errorf("Cap = %d, expected 14", got)
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("SetEnabled(false) should disable progression")
	}
	d.SetInitialLevel(2)
	if d.Level(0) != 1 {
		t.Errorf("SetInitialLevel should clamp to 1, got %v", d.Level(0))
	}
}
