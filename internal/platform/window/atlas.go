package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
)

// Tileset geometry: 16px square tiles, atlasCols to a row.
const (
	tileSize  = beekind.TileSize
	atlasCols = 10
	atlasRows = 6
)

// Atlas holds the tileset image and cuts sprites out of it.
type Atlas struct {
	image *ebiten.Image
	cols  int
	tiles map[int]*ebiten.Image
}

// LoadAtlas loads a PNG tileset of 16px tiles laid out in rows.
func LoadAtlas(path string) (*Atlas, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset %s: %w", path, err)
	}

	cols := img.Bounds().Dx() / tileSize
	if cols == 0 || img.Bounds().Dy() < tileSize {
		return nil, fmt.Errorf("tileset %s is smaller than one %dpx tile", path, tileSize)
	}
	return newAtlas(img, cols), nil
}

// PlaceholderAtlas builds a tileset of flat coloured shapes, for running
// without artwork.
func PlaceholderAtlas() *Atlas {
	return newAtlas(ebiten.NewImageFromImage(placeholderSheet()), atlasCols)
}

func newAtlas(img *ebiten.Image, cols int) *Atlas {
	return &Atlas{image: img, cols: cols, tiles: make(map[int]*ebiten.Image)}
}

// Tile returns the sub-image of sprite id, or nil when it lies outside the
// sheet.
func (a *Atlas) Tile(id int) *ebiten.Image {
	if t, ok := a.tiles[id]; ok {
		return t
	}

	rect := tileRect(id, a.cols)
	if id < 0 || !rect.In(a.image.Bounds()) {
		return nil
	}
	t := a.image.SubImage(rect).(*ebiten.Image)
	a.tiles[id] = t
	return t
}

func tileRect(id, cols int) image.Rectangle {
	x := (id % cols) * tileSize
	y := (id / cols) * tileSize
	return image.Rect(x, y, x+tileSize, y+tileSize)
}

// placeholderSheet draws every sprite id as a coloured silhouette.
func placeholderSheet() *image.NRGBA {
	sheet := image.NewNRGBA(image.Rect(0, 0, atlasCols*tileSize, atlasRows*tileSize))
	for id := 1; id < atlasCols*atlasRows; id++ {
		if beekind.SpriteName(id) == "" {
			continue
		}
		r := tileRect(id, atlasCols)
		shape := silhouette(id)
		fill(sheet, shape.Add(r.Min), toColor(beekind.SpriteColour(id)))
	}
	return sheet
}

// silhouette returns the filled area of a placeholder tile, relative to the
// tile's top-left corner.
func silhouette(id int) image.Rectangle {
	switch beekind.SpriteName(id) {
	case "terrain", "tree", "cloud":
		return image.Rect(0, 0, tileSize, tileSize)
	case "rabbit":
		return image.Rect(4, 2, 12, 16)
	case "honey":
		return image.Rect(6, 6, 10, 10)
	case "bee", "zombee":
		return image.Rect(3, 5, 13, 12)
	case "grub":
		return image.Rect(2, 10, 14, 16)
	case "gun":
		return image.Rect(2, 10, 14, 14)
	}
	return image.Rect(3, 3, 13, 16)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func toColor(c core.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
