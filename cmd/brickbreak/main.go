// brickbreak is a terminal Brick Breaker: a ball bounces between a
// player-controlled paddle and a field of destructible bricks, with
// score, lives, and progressive levels.
//
// Usage:
//
//	brickbreak              - Play in the current terminal
//	brickbreak serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "Brick Breaker in your terminal",
	Long: `brickbreak is a terminal Brick Breaker game.

Controls:
  Mouse / ←→ / a d  - Move paddle
  Space             - Launch ball
  P/Esc             - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - 3 lives, default paddle and ball
  hard   - 2 lives, narrow paddle, fast ball

Examples:
  brickbreak
  brickbreak --difficulty hard
  brickbreak --config ./my-config.yaml
  brickbreak serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(serveCmd)
}
