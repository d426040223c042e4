package core

// Logical screen dimensions the simulation draws in, in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

// FlipMode selects how a sprite is mirrored.
type FlipMode uint8

const (
	FlipNone       FlipMode = 1
	FlipHorizontal FlipMode = 2
)

// Surface is the rendering target handed to the simulation each frame.
// Coordinates are logical screen pixels.
type Surface interface {
	// SetColour sets the colour used by Clear and SolidRect.
	SetColour(c RGBA)
	// Clear fills the whole surface with the current colour.
	Clear()
	// SolidRect fills a rectangle with the current colour.
	SolidRect(x, y, w, h int)
	// Image draws sprite id from the tileset with its top-left at (x, y).
	Image(x, y, id int, flip FlipMode)
}

// TextSurface is implemented by surfaces that render text natively, such as
// a terminal cell buffer where bitmap glyphs would be unreadable. The text
// writer uses it instead of plotting glyph pixels.
type TextSurface interface {
	Surface
	// TextMetrics returns the pixel size one character occupies.
	TextMetrics() (w, h int)
	// Text draws s with its top-left at (x, y) in the current colour.
	Text(x, y int, s string)
}
