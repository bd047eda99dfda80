package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	assert.Equal(t, 720.0, cfg.Field.Width)
	assert.Equal(t, 520.0, cfg.Field.Height)
	assert.Equal(t, 110.0, cfg.Paddle.Width)
	assert.Equal(t, 12.0, cfg.Paddle.Height)
	assert.Equal(t, 30.0, cfg.Paddle.BottomOffset)
	assert.Equal(t, 8.0, cfg.Ball.Radius)
	assert.Equal(t, 5.0, cfg.Ball.Speed)
	assert.Equal(t, 0.8, cfg.Ball.SpeedUpPerLevel)
	assert.Equal(t, 3, cfg.Gameplay.Lives)
	assert.Equal(t, 30.0, cfg.Gameplay.KeyboardStep)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		lives  int
		width  float64
		speed  float64
	}{
		{"easy", DifficultyEasy, 5, 140, 4},
		{"normal leaves defaults", DifficultyNormal, 3, 110, 5},
		{"hard", DifficultyHard, 2, 80, 6.5},
		{"unknown leaves defaults", DifficultyPreset("nightmare"), 3, 110, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tt.preset)

			assert.Equal(t, tt.lives, cfg.Gameplay.Lives)
			assert.Equal(t, tt.width, cfg.Paddle.Width)
			assert.Equal(t, tt.speed, cfg.Ball.Speed)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
field:
  width: 900
  height: 600
paddle:
  width: 120
  height: 14
  bottom_offset: 40
ball:
  radius: 6
  speed: 7
  speed_up_per_level: 1.5
gameplay:
  lives: 4
  keyboard_step: 25
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 900.0, cfg.Field.Width)
	assert.Equal(t, 600.0, cfg.Field.Height)
	assert.Equal(t, 40.0, cfg.Paddle.BottomOffset)
	assert.Equal(t, 1.5, cfg.Ball.SpeedUpPerLevel)
	assert.Equal(t, 4, cfg.Gameplay.Lives)
	assert.Equal(t, 25.0, cfg.Gameplay.KeyboardStep)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no user config

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultGameConfig(), cfg)
}
