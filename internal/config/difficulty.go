package config

import "math"

// DifficultyManager calculates per-level game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a level index.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(level)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns an enemy speed scaled for the level.
func (d *DifficultyManager) Speed(baseSpeed float64, level int) float64 {
	return baseSpeed * (1.0 + d.Level(level)*d.cfg.Scaling.SpeedMultiplier)
}

// Cap returns a population cap reduced for the level.
func (d *DifficultyManager) Cap(baseCap int, level int) int {
	reduction := int(d.Level(level) * float64(d.cfg.Scaling.CapReduction))
	result := baseCap - reduction
	if result < 1 {
		result = 1
	}
	return result
}

// Interval returns a spawn interval shortened for the level.
func (d *DifficultyManager) Interval(baseInterval int, level int) int {
	reduction := int(d.Level(level) * float64(d.cfg.Scaling.IntervalReduction))
	result := baseInterval - reduction
	if result < FPS { // Minimum one second between spawns
		result = FPS
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
