// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// GameConfig contains all tunable parameters for a Brick Breaker session.
type GameConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the simulation field size. Field units are
// independent of terminal cells; the renderer scales.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // paddle center distance from the bottom edge
}

// BallConfig defines ball geometry and speed behavior.
type BallConfig struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`              // launch speed, field units per tick
	SpeedUpPerLevel float64 `yaml:"speed_up_per_level"` // added to speed on each level clear
}

// GameplayConfig defines session rules and input tuning.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	KeyboardStep float64 `yaml:"keyboard_step"` // paddle movement per key press, field units
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 6.5
	}
}
