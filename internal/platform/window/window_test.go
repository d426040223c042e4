package window

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
)

func TestTileRect(t *testing.T) {
	tests := []struct {
		id   int
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{9, image.Rect(144, 0, 160, 16)},
		{beekind.SpriteBee, image.Rect(16, 80, 32, 96)},
	}
	for _, tt := range tests {
		if got := tileRect(tt.id, atlasCols); got != tt.want {
			t.Errorf("tileRect(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestPlaceholderSheet(t *testing.T) {
	sheet := placeholderSheet()
	if b := sheet.Bounds(); b.Dx() != atlasCols*tileSize || b.Dy() != atlasRows*tileSize {
		t.Fatalf("sheet bounds %v", b)
	}

	at := func(id, dx, dy int) core.RGBA {
		r := tileRect(id, atlasCols)
		c := sheet.NRGBAAt(r.Min.X+dx, r.Min.Y+dy)
		return core.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	if got := at(beekind.SpriteBee, 8, 8); got != beekind.SpriteColour(beekind.SpriteBee) {
		t.Errorf("bee centre = %v, want %v", got, beekind.SpriteColour(beekind.SpriteBee))
	}
	if got := at(beekind.SpriteBee, 0, 0); got.A != 0 {
		t.Errorf("bee corner should be transparent, got %v", got)
	}
	if got := at(7, 0, 0); got != beekind.SpriteColour(7) {
		t.Errorf("terrain should fill the tile, got %v", got)
	}
	if got := at(beekind.SpriteToggle, 8, 8); got.A != 0 {
		t.Errorf("toggle should stay invisible, got %v", got)
	}
}

func TestPollMapsKeys(t *testing.T) {
	h := &Host{input: core.NewButtonState()}

	held := map[ebiten.Key]bool{ebiten.KeyQ: true, ebiten.KeySpace: true}
	h.poll(func(k ebiten.Key) bool { return held[k] })

	if !h.input.Held(core.ButtonLeft) || !h.input.Held(core.ButtonFire) {
		t.Error("Q and space should hold left and fire")
	}
	if h.input.Held(core.ButtonRight) || h.input.Held(core.ButtonDebug) {
		t.Error("unpressed buttons should not be held")
	}

	h.debug = true
	h.poll(func(ebiten.Key) bool { return false })
	if h.input.Held(core.ButtonLeft) {
		t.Error("released keys should release their button")
	}
	if !h.input.Held(core.ButtonDebug) {
		t.Error("debug switch should hold the debug button")
	}
}
