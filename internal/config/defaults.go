package config

import (
	_ "embed"
)

//go:embed defaults/beekind.yaml
var defaultBeeKindYAML []byte

// FPS is the nominal frame rate the default timers are expressed in.
const FPS = 30

// DefaultBeeKindConfig returns the default Bee Kind configuration.
func DefaultBeeKindConfig() BeeKindConfig {
	return BeeKindConfig{
		Physics: PhysicsConfig{
			Gravity:          0.25,
			TerminalVelocity: 10,
			Friction:         1,
			Speed:            2,
			HurtSpeed:        1,
			JumpSpeed:        5,
			CoyoteTicks:      15,
		},
		Weapon: WeaponConfig{
			HeatTicks:  10,
			ShotTTL:    40,
			ShotSpeed:  5,
			FlashTicks: 5,
			HitTTL:     3,
		},
		AI: AIConfig{
			BeeSpeed:       0.5,
			ZombeeSpeed:    0.25,
			GrubSpeed:      0.25,
			ZombeeHealth:   10,
			GrubHealth:     5,
			PlantHealth:    2,
			GrowTicks:      15 * FPS,
			GrowJitter:     120,
			ForageDwell:    2 * FPS,
			HatchDwell:     5 * FPS,
			StealDwell:     5 * FPS,
			BreakDwell:     10 * FPS,
			EatDwell:       3 * FPS,
			IdleDwell:      2 * FPS,
			HiveThreshold:  10,
			CarryThreshold: 5,
			GrubGrowth:     1.5,
		},
		Spawn: SpawnConfig{
			IntervalTicks: 8 * FPS,
			MaxZombees:    15,
			MaxBees:       20,
			ColonyBase:    5,
			FlowerChance:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 6,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				CapReduction:      5,
				IntervalReduction: 4 * FPS,
			},
		},
	}
}
