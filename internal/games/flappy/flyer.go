package flappy

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Flyer is the player-controlled entity. It falls under gravity and
// rises on impulses; its horizontal position never changes.
type Flyer struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	Velocity float64 // px/s, positive is down
	Rotation float64 // radians, clockwise

	gravity     float64
	impulse     float64
	rotFactor   float64
	maxRotation float64 // radians
	padding     float64
	floorY      float64
}

// NewFlyer places a flyer at its start position with zero velocity.
func NewFlyer(cfg *config.FlappyConfig) *Flyer {
	return &Flyer{
		X:           cfg.Flyer.X,
		Y:           cfg.Canvas.Height/2 - cfg.Flyer.StartOffset,
		W:           cfg.Flyer.Width,
		H:           cfg.Flyer.Height,
		gravity:     cfg.Physics.Gravity,
		impulse:     cfg.Physics.Impulse,
		rotFactor:   cfg.Physics.RotationFactor,
		maxRotation: cfg.Physics.MaxRotation * math.Pi / 180,
		padding:     cfg.Flyer.HitboxPadding,
		floorY:      cfg.Canvas.FloorY(),
	}
}

// Update integrates one frame of motion and reports whether the flyer
// hit the floor. The ceiling stops the flyer without ending the run.
func (f *Flyer) Update(dt float64) (floorHit bool) {
	f.Velocity += f.gravity * dt
	f.Y += f.Velocity * dt
	f.Rotation = core.ClampF(f.Velocity*f.rotFactor, -f.maxRotation, f.maxRotation)

	if f.Y+f.H > f.floorY {
		f.Y = f.floorY - f.H
		f.Velocity = 0
		return true
	}
	if f.Y < 0 {
		f.Y = 0
		f.Velocity = 0
	}
	return false
}

// Impulse replaces the vertical velocity with the upward impulse.
func (f *Flyer) Impulse() {
	f.Velocity = f.impulse
}

// Rect returns the sprite rectangle.
func (f *Flyer) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.W, f.H)
}

// Bounds returns the collision rectangle, the sprite inset by the hitbox padding.
func (f *Flyer) Bounds() core.Rect {
	return f.Rect().Inset(f.padding)
}

// Draw blits the flyer rotated around its center.
func (f *Flyer) Draw(dst core.Surface) {
	dst.Blit(assets.ImageFlyer, f.Rect(), f.Rotation)
}
