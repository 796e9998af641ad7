package tui

import (
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/assets"
	"github.com/vovakirdan/skyhop/internal/audio"
)

// NewAssetLoader prepares, without starting, the loader for the terminal
// resource set: text sprites, plus sounds when withSound is set.
func NewAssetLoader(fsys fs.FS, withSound bool, logger *log.Logger) *assets.Loader {
	l := assets.NewLoader(fsys, assets.Manifest(assets.VariantTerminal, withSound), logger).
		Use(assets.KindImage, assets.DecodeSprite)
	if withSound {
		l.Use(assets.KindSound, audio.Decode)
	}
	return l
}
