package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hardcoded default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded YAML cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: CanvasConfig{
			Width:       800,
			Height:      600,
			FloorOffset: 50,
		},
		Physics: FlappyPhysics{
			Gravity:        1800,
			Impulse:        -600,
			RotationFactor: 0.0016667,
			MaxRotation:    45,
			MaxFrameStep:   0.1,
		},
		Flyer: FlappyFlyer{
			X:             50,
			Width:         50,
			Height:        35,
			StartOffset:   25,
			HitboxPadding: 5,
		},
		Obstacles: FlappyObstacles{
			Width:         80,
			Gap:           150,
			MinGap:        110,
			Speed:         120,
			HitboxPadding: 4,
		},
		Spawner: FlappySpawner{
			Interval:     1.5,
			CenterJitter: 75,
		},
		Background: BackgroundConfig{
			Layers:    3,
			BaseSpeed: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.75,
				GapReduction:      40,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
