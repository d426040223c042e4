package core

import (
	"strings"
)

// Pixel footprint of one terminal cell. A 16px tile covers 4x2 cells and the
// 320x240 logical screen maps onto 80x30 cells.
const (
	CellW = 4
	CellH = 8
)

// Cell is a single character position with its colours.
type Cell struct {
	Rune rune
	FG   RGBA
	BG   RGBA
}

// Art is the cell rendering of a sprite: up to two rows of four runes, with
// spaces left transparent.
type Art struct {
	Rows  [2]string
	Color RGBA
}

// ArtFunc looks up the cell art for a sprite id.
type ArtFunc func(id int) (Art, bool)

// Screen is a 2D character buffer that implements TextSurface by mapping
// logical pixels onto terminal cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	colour RGBA
	art    ArtFunc
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		colour: ColorBlack,
	}
	s.allocate()
	s.Clear()
	return s
}

// SetArt installs the sprite lookup used by Image.
func (s *Screen) SetArt(fn ArtFunc) {
	s.art = fn
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next frame
// redraws everything.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// SetColour sets the colour used by Clear, SolidRect and Text.
func (s *Screen) SetColour(c RGBA) {
	s.colour = c
}

// Clear fills the entire screen with blanks in the current colour.
func (s *Screen) Clear() {
	bg := s.colour.Over(ColorBlack)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: bg, BG: bg}
		}
	}
}

// Set places a rune at the given cell, keeping its colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at cell (x, y) in the
// current colour. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.plot(x+i, y, r, s.colour)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on cell row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// plot sets a rune with its foreground blended over the cell background.
func (s *Screen) plot(x, y int, r rune, fg RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = fg.Over(c.BG)
}

// SolidRect fills a pixel rectangle. Rectangles smaller than a cell become a
// dot so particles stay visible without flooding whole cells.
func (s *Screen) SolidRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if w < CellW && h < CellH {
		dot := '·'
		if w > 1 || h > 1 {
			dot = '•'
		}
		s.plot(floorDiv(x, CellW), floorDiv(y, CellH), dot, s.colour)
		return
	}

	x0, y0 := floorDiv(x, CellW), floorDiv(y, CellH)
	x1, y1 := ceilDiv(x+w, CellW), ceilDiv(y+h, CellH)
	for cy := max(y0, 0); cy < min(y1, s.height); cy++ {
		for cx := max(x0, 0); cx < min(x1, s.width); cx++ {
			c := &s.cells[cy][cx]
			c.BG = s.colour.Over(c.BG)
			if c.Rune == ' ' {
				c.FG = c.BG
			}
		}
	}
}

// Image draws a sprite's cell art at pixel (x, y).
func (s *Screen) Image(x, y, id int, flip FlipMode) {
	if s.art == nil {
		return
	}
	art, ok := s.art(id)
	if !ok {
		return
	}
	cx, cy := roundDiv(x, CellW), roundDiv(y, CellH)
	for row, line := range art.Rows {
		runes := []rune(line)
		if flip == FlipHorizontal {
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = mirror(runes[j]), mirror(runes[i])
			}
			if len(runes)%2 == 1 {
				runes[len(runes)/2] = mirror(runes[len(runes)/2])
			}
		}
		for col, r := range runes {
			if r == ' ' {
				continue
			}
			s.plot(cx+col, cy+row, r, art.Color)
		}
	}
}

// TextMetrics returns the pixel footprint of one character.
func (s *Screen) TextMetrics() (int, int) {
	return CellW, CellH
}

// Text draws s with its top-left at pixel (x, y).
func (s *Screen) Text(x, y int, text string) {
	s.DrawText(floorDiv(x, CellW), floorDiv(y, CellH), text)
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func mirror(r rune) rune {
	switch r {
	case '<':
		return '>'
	case '>':
		return '<'
	case '(':
		return ')'
	case ')':
		return '('
	case '/':
		return '\\'
	case '\\':
		return '/'
	case '▌':
		return '▐'
	case '▐':
		return '▌'
	case '◄':
		return '►'
	case '►':
		return '◄'
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func roundDiv(a, b int) int {
	return floorDiv(a+b/2, b)
}
