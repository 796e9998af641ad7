package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/core"
)

func block(t *testing.T, art string) *assets.Sprite {
	t.Helper()
	sp, err := assets.ParseSprite(strings.NewReader(art))
	if err != nil {
		t.Fatal(err)
	}
	return sp
}

// 80x24 cells over an 800x600 world: 10 px per column, 25 px per row.
func newTestSurface(sprites map[core.ImageID]*assets.Sprite) (*core.Screen, *ScreenSurface) {
	screen := core.NewScreen(80, 24)
	lookup := func(id core.ImageID) (*assets.Sprite, bool) {
		sp, ok := sprites[id]
		return sp, ok
	}
	return screen, NewScreenSurface(screen, 800, 600, lookup)
}

func TestSurfaceBlitScales(t *testing.T) {
	screen, s := newTestSurface(map[core.ImageID]*assets.Sprite{
		"box": block(t, "##\n##"),
	})

	s.Blit("box", core.NewRect(100, 100, 50, 50), 0)

	tests := []struct {
		x, y int
		want rune
	}{
		{10, 4, '#'},
		{14, 5, '#'},
		{15, 4, ' '},
		{9, 4, ' '},
		{10, 3, ' '},
		{10, 6, ' '},
	}
	for _, tt := range tests {
		if got := screen.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSurfaceBlitTransparentAndClipped(t *testing.T) {
	screen, s := newTestSurface(map[core.ImageID]*assets.Sprite{
		"ring": block(t, "###\n# #\n###"),
	})

	screen.Set(0, 1, 'x')
	// partly off the left edge: the sprite spans columns -1..1
	s.Blit("ring", core.NewRect(-10, 0, 30, 75), 0)

	if got := screen.Get(0, 1); got != 'x' {
		t.Errorf("transparent cell overwritten with %q", got)
	}
	if got := screen.Get(0, 0); got != '#' {
		t.Errorf("visible cell = %q, want '#'", got)
	}
}

func TestSurfaceBlitMinimumCell(t *testing.T) {
	screen, s := newTestSurface(map[core.ImageID]*assets.Sprite{
		"dot": block(t, "o"),
	})

	s.Blit("dot", core.NewRect(200, 300, 2, 2), 0)
	if got := screen.Get(20, 12); got != 'o' {
		t.Errorf("tiny image not drawn: %q", got)
	}
}

func TestSurfaceBlitUnknownImage(t *testing.T) {
	screen, s := newTestSurface(nil)
	s.Blit("missing", core.NewRect(0, 0, 800, 600), 0)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unknown image drew something")
	}

	// a surface with no sprite source only draws text
	bare := NewScreenSurface(screen, 800, 600, nil)
	bare.Blit("missing", core.NewRect(0, 0, 800, 600), 0)
}

func TestSurfaceText(t *testing.T) {
	screen, s := newTestSurface(nil)

	s.Text(400, 20, "Score: 7", core.TextStyle{Size: 30, Align: core.AlignCenter, Fill: core.ColorWhite})

	row := screen.Row(1)
	if !strings.Contains(row, "Score: 7") {
		t.Fatalf("row 1 = %q", row)
	}
	if start := strings.Index(row, "Score"); start != 36 {
		t.Errorf("text starts at column %d, want 36", start)
	}
	if c := screen.GetCell(36, 1); c.Color != core.ColorWhite {
		t.Errorf("text color = %v, want white", c.Color)
	}
}

func TestSurfacePanel(t *testing.T) {
	screen, s := newTestSurface(nil)
	screen.Set(30, 10, 'x')

	s.Panel(core.NewRect(200, 200, 400, 100))

	if got := screen.Get(20, 8); got != '┌' {
		t.Errorf("corner = %q, want '┌'", got)
	}
	if got := screen.Get(30, 10); got != ' ' {
		t.Errorf("panel interior = %q, want blank", got)
	}
}
