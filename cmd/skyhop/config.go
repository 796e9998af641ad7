package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/launch"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game tuning as YAML",
	Long: `Print the game tuning that 'skyhop play' would use, after the
config search order and the difficulty preset are applied.

Config search order:
  1. --config path
  2. ~/.skyhop/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Examples:
  skyhop config > ~/.skyhop/configs/flappy.yaml
  skyhop config --difficulty hard
  skyhop config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, _, err := launch.LoadTuning(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(tuning); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
