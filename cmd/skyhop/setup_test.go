package main

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/games/flappy"
)

func TestRequireGame(t *testing.T) {
	if id, err := requireGame(nil, flappy.ID); err != nil || id != flappy.ID {
		t.Errorf("requireGame(nil) = %q, %v", id, err)
	}
	if _, err := requireGame([]string{"tetris"}, flappy.ID); err == nil {
		t.Error("expected error for unregistered game")
	}
}

func TestDifficultyLabels(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	tests := []struct {
		flag    string
		want    []string
		wantErr bool
	}{
		{"", []string{"classic", "easy", "normal", "hard", "fixed"}, false},
		{"classic", []string{"classic"}, false},
		{"hard", []string{"hard"}, false},
		{"brutal", nil, true},
	}
	for _, tt := range tests {
		flagDifficulty = tt.flag
		got, err := difficultyLabels()
		if (err != nil) != tt.wantErr {
			t.Errorf("difficultyLabels(%q) error = %v", tt.flag, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("difficultyLabels(%q) = %v, want %v", tt.flag, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("difficultyLabels(%q)[%d] = %q, want %q", tt.flag, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestPresetRows(t *testing.T) {
	base := config.DefaultFlappyConfig()
	rows := presetRows(base, func(label string) int {
		if label == "hard" {
			return 12
		}
		return 0
	})

	if len(rows) != len(config.Presets) {
		t.Fatalf("got %d rows, want %d", len(rows), len(config.Presets))
	}

	byLabel := make(map[string]presetRow, len(rows))
	for _, r := range rows {
		byLabel[r.Label] = r
	}

	classic := byLabel["classic"]
	if classic.Speed != base.Obstacles.Speed || classic.Gap != base.Obstacles.Gap || classic.Progression != "none" {
		t.Errorf("classic = %+v, want base tuning without progression", classic)
	}
	if fixed := byLabel["fixed"]; fixed.Progression != "none" {
		t.Errorf("fixed progression = %q, want none", fixed.Progression)
	}

	hard, easy := byLabel["hard"], byLabel["easy"]
	if hard.Speed <= easy.Speed || hard.Gap >= easy.Gap {
		t.Errorf("hard %+v should start faster and tighter than easy %+v", hard, easy)
	}
	if hard.Progression != "max at 40 points" {
		t.Errorf("hard progression = %q", hard.Progression)
	}
	if hard.Best != 12 || easy.Best != 0 {
		t.Errorf("best scores = hard %d, easy %d", hard.Best, easy.Best)
	}

	if rows := presetRows(base, nil); rows[0].Best != 0 {
		t.Error("nil lookup should leave best scores empty")
	}
}
