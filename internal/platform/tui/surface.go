package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/core"
)

// SpriteLookup resolves an image to its terminal sprite.
type SpriteLookup func(id core.ImageID) (*assets.Sprite, bool)

// LoaderSprites looks sprites up in an asset loader. Sprites that are still
// loading, or failed, are reported missing.
func LoaderSprites(l *assets.Loader) SpriteLookup {
	return func(id core.ImageID) (*assets.Sprite, bool) {
		return assets.Lookup[*assets.Sprite](l, string(id))
	}
}

// ScreenSurface draws world-pixel geometry onto a terminal cell buffer,
// scaling the world to the whole screen.
type ScreenSurface struct {
	screen  *core.Screen
	sprites SpriteLookup
	worldW  float64
	worldH  float64
}

// NewScreenSurface creates a surface for a world of the given size.
func NewScreenSurface(screen *core.Screen, worldW, worldH float64, sprites SpriteLookup) *ScreenSurface {
	return &ScreenSurface{
		screen:  screen,
		sprites: sprites,
		worldW:  worldW,
		worldH:  worldH,
	}
}

func (s *ScreenSurface) col(x float64) int {
	return int(math.Round(x * float64(s.screen.Width()) / s.worldW))
}

func (s *ScreenSurface) row(y float64) int {
	return int(math.Round(y * float64(s.screen.Height()) / s.worldH))
}

// cells converts a world rectangle to a cell span at least one cell in each direction.
func (s *ScreenSurface) cells(r core.Rect) (x0, y0, w, h int) {
	x0, y0 = s.col(r.X), s.row(r.Y)
	x1, y1 := s.col(r.Right()), s.row(r.Bottom())
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// Clear blanks the screen.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// Blit samples the sprite into the cells covered by dst. Spaces are
// transparent. Terminal cells cannot rotate, so rotation is ignored.
func (s *ScreenSurface) Blit(img core.ImageID, dst core.Rect, _ float64) {
	if s.sprites == nil {
		return
	}
	sp, ok := s.sprites(img)
	if !ok {
		return
	}

	x0, y0, w, h := s.cells(dst)
	fromX, toX := max(x0, 0), min(x0+w, s.screen.Width())
	fromY, toY := max(y0, 0), min(y0+h, s.screen.Height())

	for y := fromY; y < toY; y++ {
		for x := fromX; x < toX; x++ {
			if r := sp.Sample(x-x0, y-y0, w, h); r != ' ' {
				s.screen.SetColored(x, y, r, sp.Color)
			}
		}
	}
}

// Panel blanks the covered cells and frames them.
func (s *ScreenSurface) Panel(dst core.Rect) {
	x, y, w, h := s.cells(dst)
	s.screen.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.screen.DrawBox(x, y, w, h, core.ColorGray)
}

// Text writes a line on the row holding the vertical middle of the glyphs.
// The fill color is used; outlines have no terminal rendition.
func (s *ScreenSurface) Text(x, y float64, text string, style core.TextStyle) {
	col := s.col(x)
	if style.Align == core.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	row := core.Clamp(s.row(y+style.Size/2), 0, s.screen.Height()-1)
	s.screen.DrawText(col, row, text, style.Fill)
}
