package config

import (
	_ "embed"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the default Meteors configuration.
// Kept in sync with defaults/meteors.yaml; this is the last-resort
// fallback if the embedded YAML ever fails to parse.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		Player: PlayerConfig{
			Width:       4,
			Height:      2,
			TargetSpeed: 1.2,
			Thrust:      0.25,
		},
		Meteors: MeteorConfig{
			MinSize:       3,
			MaxSize:       9,
			MinSpeed:      0.2,
			MaxSpeed:      0.7,
			Drift:         0.15,
			SpawnInterval: 30,
			MaxCount:      24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600, // one minute at 60 ticks per second
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  22,
			},
		},
	}
}
