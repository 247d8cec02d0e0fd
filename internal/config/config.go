// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MeteorsConfig contains all configuration for the Meteors game.
type MeteorsConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Meteors    MeteorConfig     `yaml:"meteors"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`        // Ship hitbox width in cells
	Height      float64 `yaml:"height"`       // Ship hitbox height in cells
	TargetSpeed float64 `yaml:"target_speed"` // Speed cap in cells per tick
	Thrust      float64 `yaml:"thrust"`       // Acceleration per tick at full input
}

// MeteorConfig defines meteor spawning and drift parameters.
type MeteorConfig struct {
	MinSize       float64 `yaml:"min_size"`       // Smallest meteor diameter
	MaxSize       float64 `yaml:"max_size"`       // Largest meteor diameter
	MinSpeed      float64 `yaml:"min_speed"`      // Slowest downward drift per tick
	MaxSpeed      float64 `yaml:"max_speed"`      // Fastest downward drift per tick
	Drift         float64 `yaml:"drift"`          // Max sideways drift per tick
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns at base difficulty
	MaxCount      int     `yaml:"max_count"`      // Population cap
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to meteor speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
