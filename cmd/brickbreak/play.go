package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the renderer; defaults if detection fails
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(gameCfg, runtime); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		// A bad custom config is fatal; the fallback chain inside Load
		// already handled the default paths.
		return gameCfg, err
	}

	switch flagDifficulty {
	case "":
		// keep config as-is
	case "easy", "normal", "hard":
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	default:
		log.Warn("unknown difficulty preset, using config as-is", "preset", flagDifficulty)
	}

	return gameCfg, nil
}
