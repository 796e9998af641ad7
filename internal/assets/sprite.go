package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/skyhop/internal/core"
)

// SpriteMode controls how a sprite is scaled to a target cell area.
type SpriteMode int

const (
	// ModeStretch scales rows and columns with nearest-neighbour sampling.
	ModeStretch SpriteMode = iota
	// ModeCapTop keeps the first row at the top edge and repeats the rest.
	ModeCapTop
	// ModeCapBottom keeps the last row at the bottom edge and repeats the rest.
	ModeCapBottom
)

var spriteModes = map[string]SpriteMode{
	"stretch":    ModeStretch,
	"cap-top":    ModeCapTop,
	"cap-bottom": ModeCapBottom,
}

// Sprite is a text image for the terminal frontends.
// A space is transparent.
type Sprite struct {
	Rows  [][]rune
	Color core.Color
	Mode  SpriteMode
}

// ParseSprite reads a sprite: optional "# key: value" header lines
// (color, mode) followed by the art rows. Short rows are padded with spaces.
func ParseSprite(r io.Reader) (*Sprite, error) {
	sp := &Sprite{Color: core.ColorWhite, Mode: ModeStretch}

	sc := bufio.NewScanner(r)
	header := true
	width := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if header && strings.HasPrefix(line, "#") {
			key, value, ok := strings.Cut(strings.TrimPrefix(line, "#"), ":")
			if !ok {
				return nil, fmt.Errorf("sprite: malformed header %q", line)
			}
			if err := sp.setHeader(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				return nil, err
			}
			continue
		}
		header = false

		row := []rune(line)
		width = max(width, len(row))
		sp.Rows = append(sp.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}

	// trailing blank lines are not art
	for len(sp.Rows) > 0 && strings.TrimSpace(string(sp.Rows[len(sp.Rows)-1])) == "" {
		sp.Rows = sp.Rows[:len(sp.Rows)-1]
	}
	if len(sp.Rows) == 0 || width == 0 {
		return nil, errors.New("sprite: no art rows")
	}

	for i, row := range sp.Rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		sp.Rows[i] = row
	}
	return sp, nil
}

func (s *Sprite) setHeader(key, value string) error {
	switch strings.ToLower(key) {
	case "color":
		c, ok := core.ParseColor(value)
		if !ok {
			return fmt.Errorf("sprite: unknown color %q", value)
		}
		s.Color = c
	case "mode":
		m, ok := spriteModes[strings.ToLower(value)]
		if !ok {
			return fmt.Errorf("sprite: unknown mode %q", value)
		}
		s.Mode = m
	default:
		return fmt.Errorf("sprite: unknown header %q", key)
	}
	return nil
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Height returns the sprite height in cells.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// Sample returns the rune at cell (x, y) when the sprite covers a w×h area.
// Out-of-range cells are transparent.
func (s *Sprite) Sample(x, y, w, h int) rune {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return ' '
	}
	sw, sh := s.Width(), s.Height()
	if sw == 0 || sh == 0 {
		return ' '
	}

	sx := x * sw / w
	var sy int
	switch {
	case s.Mode == ModeStretch || sh == 1:
		sy = y * sh / h
	case s.Mode == ModeCapTop:
		if y == 0 {
			sy = 0
		} else {
			sy = 1 + (y-1)%(sh-1)
		}
	case s.Mode == ModeCapBottom:
		if y == h-1 {
			sy = sh - 1
		} else {
			sy = y % (sh - 1)
		}
	}
	return s.Rows[sy][sx]
}

// DecodeSprite is the loader decoder for terminal image resources.
func DecodeSprite(r io.Reader) (any, error) {
	return ParseSprite(r)
}
