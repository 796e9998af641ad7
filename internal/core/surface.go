package core

// ImageID names an image resource (a sprite in the terminal, a bitmap on the desktop).
type ImageID string

// TextAlign controls horizontal text placement relative to the anchor x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// TextStyle describes how a line of text is drawn.
type TextStyle struct {
	Size    float64 // Glyph height in world pixels; terminal surfaces ignore it
	Align   TextAlign
	Fill    Color
	Outline Color // ColorDefault means no outline
}

// Surface is the drawing target games render onto.
// Coordinates are world pixels; each implementation scales them to its output.
type Surface interface {
	// Clear wipes the whole surface.
	Clear()

	// Blit draws an image stretched to dst, rotated by rotation radians
	// around the center of dst. Unknown images are skipped.
	Blit(img ImageID, dst Rect, rotation float64)

	// Panel draws a backdrop for a block of text.
	Panel(dst Rect)

	// Text draws a single line of text with its top at y.
	Text(x, y float64, text string, style TextStyle)
}

// Readiness reports progress of asynchronous resource loading.
type Readiness interface {
	Ready() bool
	Progress() (loaded, total int)
}
