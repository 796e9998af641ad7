// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// MaxBackgroundLayers is the number of background layer images shipped with the game.
const MaxBackgroundLayers = 3

// FlappyConfig contains all tuning for the game.
// Distances are in world pixels and times in seconds.
type FlappyConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Flyer      FlappyFlyer      `yaml:"flyer"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Spawner    FlappySpawner    `yaml:"spawner"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the world size. Frontends scale it to their output.
type CanvasConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorOffset float64 `yaml:"floor_offset"` // Distance of the floor line above the bottom edge
}

// FloorY returns the y coordinate of the floor line.
func (c CanvasConfig) FloorY() float64 {
	return c.Height - c.FloorOffset
}

// FlappyPhysics defines the flyer's motion.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`         // px/s², positive is down
	Impulse        float64 `yaml:"impulse"`         // px/s, negative is up
	RotationFactor float64 `yaml:"rotation_factor"` // radians per px/s of velocity
	MaxRotation    float64 `yaml:"max_rotation"`    // degrees
	MaxFrameStep   float64 `yaml:"max_frame_step"`  // Upper bound for a single frame's dt
}

// FlappyFlyer defines the flyer's geometry.
type FlappyFlyer struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartOffset   float64 `yaml:"start_offset"` // Start this far above the canvas middle
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// FlappyObstacles defines obstacle geometry and motion.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	MinGap        float64 `yaml:"min_gap"` // Floor for the gap when difficulty shrinks it
	Speed         float64 `yaml:"speed"`   // px/s
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// FlappySpawner defines when and where obstacle pairs appear.
type FlappySpawner struct {
	Interval     float64 `yaml:"interval"`      // Seconds between pairs
	CenterJitter float64 `yaml:"center_jitter"` // Max distance of the gap center from the canvas middle
}

// BackgroundConfig defines the parallax layers.
// Layer i scrolls at BaseSpeed*(i+1), so nearer layers move faster.
type BackgroundConfig struct {
	Layers    int     `yaml:"layers"`
	BaseSpeed float64 `yaml:"base_speed"`
}

// LayerSpeed returns the scroll speed of the given layer index.
func (b BackgroundConfig) LayerSpeed(i int) float64 {
	return b.BaseSpeed * float64(i+1)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to the speed factor
	GapReduction      float64 `yaml:"gap_reduction"`      // Pixels removed from the gap
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in display order.
var Presets = []DifficultyPreset{
	DifficultyDefault,
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(s)
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Label returns the name shown to players.
func (p DifficultyPreset) Label() string {
	if p == DifficultyDefault {
		return "classic"
	}
	return string(p)
}

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

// Validate reports every configuration value that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.max_frame_step", c.Physics.MaxFrameStep)
	positive("flyer.width", c.Flyer.Width)
	positive("flyer.height", c.Flyer.Height)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.gap", c.Obstacles.Gap)
	positive("obstacles.min_gap", c.Obstacles.MinGap)
	positive("obstacles.speed", c.Obstacles.Speed)
	positive("spawner.interval", c.Spawner.Interval)

	if c.Physics.Impulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.impulse must be negative (upward), got %v", c.Physics.Impulse))
	}
	if c.Canvas.FloorOffset < 0 || c.Canvas.FloorOffset >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("canvas.floor_offset must be within [0, height), got %v", c.Canvas.FloorOffset))
	}
	if c.Obstacles.Gap+2*c.Spawner.CenterJitter > c.Canvas.Height {
		errs = append(errs, fmt.Errorf("obstacles.gap plus twice spawner.center_jitter exceeds canvas.height"))
	}
	if c.Obstacles.MinGap > c.Obstacles.Gap {
		errs = append(errs, fmt.Errorf("obstacles.min_gap must not exceed obstacles.gap, got %v > %v", c.Obstacles.MinGap, c.Obstacles.Gap))
	}
	if c.Difficulty.Scaling.GapReduction < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.gap_reduction must not be negative, got %v", c.Difficulty.Scaling.GapReduction))
	}
	if c.Background.Layers < 0 || c.Background.Layers > MaxBackgroundLayers {
		errs = append(errs, fmt.Errorf("background.layers must be within [0, %d], got %d", MaxBackgroundLayers, c.Background.Layers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
