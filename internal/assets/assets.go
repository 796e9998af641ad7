// Package assets owns the game's image and sound resources and loads them
// asynchronously. Resources ship embedded in the binary; a directory with the
// same layout can replace them.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

//go:embed data
var embedded embed.FS

// Image resources.
const (
	ImageFlyer          core.ImageID = "flyer"
	ImageObstacleTop    core.ImageID = "obstacle-top"
	ImageObstacleBottom core.ImageID = "obstacle-bottom"
)

// Sound resources.
const (
	SoundFlap  = "flap"
	SoundScore = "score"
	SoundHit   = "hit"
)

// SoundFor returns the sound resource played on a game event.
func SoundFor(ev core.Event) (string, bool) {
	switch ev {
	case core.EventFlap:
		return SoundFlap, true
	case core.EventScore:
		return SoundScore, true
	case core.EventCrash:
		return SoundHit, true
	default:
		return "", false
	}
}

// BackgroundLayer returns the image of background layer i (0 = farthest).
func BackgroundLayer(i int) core.ImageID {
	return core.ImageID(fmt.Sprintf("bg-layer-%d", i+1))
}

// Kind is the type of a resource, selecting its decoder.
type Kind int

const (
	KindImage Kind = iota
	KindSound
)

// String returns the kind name used in log output.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Variant selects the image format for a frontend.
type Variant int

const (
	VariantTerminal Variant = iota // Text sprites
	VariantDesktop                 // PNG bitmaps
)

// Resource is a single file to load.
type Resource struct {
	Name string
	Kind Kind
	Path string
}

// Embedded returns the resources compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails for invalid paths; "data" is a literal
		panic(err)
	}
	return sub
}

// Manifest returns the fixed resource set for a frontend variant:
// three images plus the background layers, and every sound when withSound is set.
func Manifest(v Variant, withSound bool) []Resource {
	images := []core.ImageID{ImageFlyer, ImageObstacleTop, ImageObstacleBottom}
	for i := 0; i < config.MaxBackgroundLayers; i++ {
		images = append(images, BackgroundLayer(i))
	}

	resources := make([]Resource, 0, len(images)+3)
	for _, img := range images {
		path := fmt.Sprintf("sprites/%s.txt", img)
		if v == VariantDesktop {
			path = fmt.Sprintf("images/%s.png", img)
		}
		resources = append(resources, Resource{Name: string(img), Kind: KindImage, Path: path})
	}

	if withSound {
		for _, name := range []string{SoundFlap, SoundScore, SoundHit} {
			resources = append(resources, Resource{
				Name: name,
				Kind: KindSound,
				Path: fmt.Sprintf("sounds/%s.wav", name),
			})
		}
	}
	return resources
}
