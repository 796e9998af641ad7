// skyhop is a gap-flying arcade game for the terminal.
//
// Usage:
//
//	skyhop play              - Play a round
//	skyhop menu              - Pick a difficulty interactively
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores            - Show high scores
//	skyhop list              - List difficulty presets and best scores
//	skyhop config            - Print the effective game tuning
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/scores.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/skyhop/internal/games/flappy"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
	flagAssets   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - fly through the gaps in your terminal",
	Long: `Skyhop is a terminal arcade game: keep the flyer in the air and
steer it through the gaps between scrolling obstacles.

Available commands:
  play     - Play a round directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games
  config   - Print the effective game tuning

Examples:
  skyhop play
  skyhop play --difficulty hard --sound
  skyhop menu
  skyhop serve --ssh :2222
  skyhop scores --plain`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory replacing the embedded sprites and sounds")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
