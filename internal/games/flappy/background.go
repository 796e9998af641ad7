package flappy

import (
	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Layer is one horizontally wrapping background image.
type Layer struct {
	Image  core.ImageID
	Speed  float64 // px/s
	Offset float64 // In (-canvasW, 0]
}

// Background scrolls its layers at increasing speeds for a parallax effect.
type Background struct {
	Layers []Layer
	width  float64
	height float64
}

// NewBackground creates the configured layers, farthest first.
func NewBackground(cfg *config.FlappyConfig) *Background {
	b := &Background{width: cfg.Canvas.Width, height: cfg.Canvas.Height}
	for i := 0; i < cfg.Background.Layers; i++ {
		b.Layers = append(b.Layers, Layer{
			Image: assets.BackgroundLayer(i),
			Speed: cfg.Background.LayerSpeed(i),
		})
	}
	return b
}

// Update scrolls every layer and wraps it once it has moved a full width.
func (b *Background) Update(dt float64) {
	for i := range b.Layers {
		l := &b.Layers[i]
		l.Offset -= l.Speed * dt
		if l.Offset <= -b.width {
			l.Offset = 0
		}
	}
}

// Draw blits each layer twice, side by side, so the wrap is seamless.
func (b *Background) Draw(dst core.Surface) {
	for _, l := range b.Layers {
		dst.Blit(l.Image, core.NewRect(l.Offset, 0, b.width, b.height), 0)
		dst.Blit(l.Image, core.NewRect(l.Offset+b.width, 0, b.width, b.height), 0)
	}
}
