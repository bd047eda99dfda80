package config

import (
	_ "embed"
)

//go:embed defaults/brickbreak.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration, matching the
// embedded defaults/brickbreak.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  720,
			Height: 520,
		},
		Paddle: PaddleConfig{
			Width:        110,
			Height:       12,
			BottomOffset: 30,
		},
		Ball: BallConfig{
			Radius:          8,
			Speed:           5,
			SpeedUpPerLevel: 0.8,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			KeyboardStep: 30,
		},
	}
}
