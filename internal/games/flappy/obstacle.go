package flappy

import (
	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Orientation tells which canvas edge an obstacle hangs from.
type Orientation int

const (
	Top    Orientation = iota // Spans downward from y = 0
	Bottom                    // Spans upward from the canvas bottom
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Top {
		return "top"
	}
	return "bottom"
}

// spanY returns the y coordinate of the obstacle's upper edge.
func (o Orientation) spanY(height, canvasH float64) float64 {
	if o == Top {
		return 0
	}
	return canvasH - height
}

func (o Orientation) image() core.ImageID {
	if o == Top {
		return assets.ImageObstacleTop
	}
	return assets.ImageObstacleBottom
}

// Obstacle is one half of a pair. It moves left at a constant speed.
type Obstacle struct {
	X           float64
	Width       float64
	Height      float64
	Speed       float64 // px/s
	Orientation Orientation
	Counted     bool // Top halves only: already scored

	canvasH float64
	padding float64
}

// NewObstacle creates an obstacle at x with the configured width and padding.
func NewObstacle(cfg *config.FlappyConfig, o Orientation, x, height, speed float64) *Obstacle {
	return &Obstacle{
		X:           x,
		Width:       cfg.Obstacles.Width,
		Height:      height,
		Speed:       speed,
		Orientation: o,
		canvasH:     cfg.Canvas.Height,
		padding:     cfg.Obstacles.HitboxPadding,
	}
}

// Update moves the obstacle left.
func (o *Obstacle) Update(dt float64) {
	o.X -= o.Speed * dt
}

// Rect returns the sprite rectangle.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Orientation.spanY(o.Height, o.canvasH), o.Width, o.Height)
}

// Bounds returns the collision rectangle.
func (o *Obstacle) Bounds() core.Rect {
	return o.Rect().Inset(o.padding)
}

// Right returns the x coordinate of the right edge.
func (o *Obstacle) Right() float64 {
	return o.X + o.Width
}

// IsOffscreen reports whether the obstacle has fully left the canvas on the left.
func (o *Obstacle) IsOffscreen() bool {
	return o.X+o.Width < 0
}

// Draw blits the obstacle sprite.
func (o *Obstacle) Draw(dst core.Surface) {
	if o.Height <= 0 {
		return
	}
	dst.Blit(o.Orientation.image(), o.Rect(), 0)
}
