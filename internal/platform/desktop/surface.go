// Package desktop runs games in an Ebitengine window with bitmap sprites,
// rotation and outlined text.
package desktop

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/core"
)

// ImageLookup resolves an image resource to its decoded bitmap.
type ImageLookup func(id core.ImageID) (image.Image, bool)

// LoaderImages looks bitmaps up in an asset loader. Images that are still
// loading, or failed, are reported missing.
func LoaderImages(l *assets.Loader) ImageLookup {
	return func(id core.ImageID) (image.Image, bool) {
		return assets.Lookup[image.Image](l, string(id))
	}
}

// outline offsets, in pixels, for the eight-way text outline
var outlineOffsets = [][2]float64{
	{-2, -2}, {0, -2}, {2, -2},
	{-2, 0}, {2, 0},
	{-2, 2}, {0, 2}, {2, 2},
}

var (
	panelFill   = color.RGBA{R: 0, G: 0, B: 0, A: 0xb0}
	panelBorder = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
)

// palette maps cell colors to RGB for text drawn in the window.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:           {R: 0xcd, G: 0x31, B: 0x31, A: 0xff},
	core.ColorGreen:         {R: 0x0d, G: 0xbc, B: 0x79, A: 0xff},
	core.ColorYellow:        {R: 0xe5, G: 0xe5, B: 0x10, A: 0xff},
	core.ColorBlue:          {R: 0x24, G: 0x72, B: 0xc8, A: 0xff},
	core.ColorMagenta:       {R: 0xbc, G: 0x3f, B: 0xbc, A: 0xff},
	core.ColorCyan:          {R: 0x11, G: 0xa8, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightRed:     {R: 0xf1, G: 0x4c, B: 0x4c, A: 0xff},
	core.ColorBrightGreen:   {R: 0x23, G: 0xd1, B: 0x8b, A: 0xff},
	core.ColorBrightYellow:  {R: 0xf5, G: 0xf5, B: 0x43, A: 0xff},
	core.ColorBrightBlue:    {R: 0x3b, G: 0x8e, B: 0xea, A: 0xff},
	core.ColorBrightMagenta: {R: 0xd6, G: 0x70, B: 0xd6, A: 0xff},
	core.ColorBrightCyan:    {R: 0x29, G: 0xb8, B: 0xdb, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorBlack:         {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// rgba converts a cell color, falling back to white.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

// Surface draws onto an Ebitengine image in world pixels, one to one.
type Surface struct {
	dst    *ebiten.Image
	images ImageLookup
	cache  map[core.ImageID]*ebiten.Image
	source *text.GoTextFaceSource // nil falls back to the bitmap face
	small  text.Face
}

// NewSurface creates a surface. The arcade font ships with Ebitengine; if it
// cannot be parsed all text uses the fixed 7x13 face.
func NewSurface(images ImageLookup) *Surface {
	s := &Surface{
		images: images,
		cache:  make(map[core.ImageID]*ebiten.Image),
		small:  text.NewGoXFace(basicfont.Face7x13),
	}
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf)); err == nil {
		s.source = src
	}
	return s
}

// Target sets the image drawn onto for the current frame.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// image returns the GPU copy of a bitmap, uploading it on first use.
func (s *Surface) image(id core.ImageID) (*ebiten.Image, bool) {
	if img, ok := s.cache[id]; ok {
		return img, true
	}
	if s.images == nil {
		return nil, false
	}
	src, ok := s.images(id)
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	s.cache[id] = img
	return img, true
}

// Clear wipes the frame.
func (s *Surface) Clear() {
	s.dst.Clear()
}

// Blit draws an image stretched to dst and rotated around its center.
func (s *Surface) Blit(id core.ImageID, dst core.Rect, rotation float64) {
	img, ok := s.image(id)
	if !ok {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{GeoM: blitGeoM(b.Dx(), b.Dy(), dst, rotation)}
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// blitGeoM maps a srcW×srcH image onto dst, rotated around the center of dst.
func blitGeoM(srcW, srcH int, dst core.Rect, rotation float64) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW == 0 || srcH == 0 {
		return m
	}
	m.Translate(-float64(srcW)/2, -float64(srcH)/2)
	m.Scale(dst.W/float64(srcW), dst.H/float64(srcH))
	if rotation != 0 {
		m.Rotate(rotation)
	}
	cx, cy := dst.Center()
	m.Translate(cx, cy)
	return m
}

// Panel draws a translucent framed backdrop.
func (s *Surface) Panel(dst core.Rect) {
	x, y, w, h := float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H)
	vector.DrawFilledRect(s.dst, x, y, w, h, panelFill, true)
	vector.StrokeRect(s.dst, x, y, w, h, 2, panelBorder, true)
}

// face returns the font face for a text size.
func (s *Surface) face(size float64) text.Face {
	if s.source == nil || size <= 0 {
		return s.small
	}
	return &text.GoTextFace{Source: s.source, Size: size}
}

// Text draws a line with its top at y, outlined when the style asks for it.
func (s *Surface) Text(x, y float64, str string, style core.TextStyle) {
	face := s.face(style.Size)

	draw := func(dx, dy float64, c color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(c)
		if style.Align == core.AlignCenter {
			op.PrimaryAlign = text.AlignCenter
		}
		text.Draw(s.dst, str, face, op)
	}

	if style.Outline != core.ColorDefault {
		outline := rgba(style.Outline)
		for _, off := range outlineOffsets {
			draw(off[0], off[1], outline)
		}
	}
	draw(0, 0, rgba(style.Fill))
}

// Debug draws a small status line in the top-left corner.
func (s *Surface) Debug(line string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(palette[core.ColorGray])
	text.Draw(s.dst, line, s.small, op)
}
