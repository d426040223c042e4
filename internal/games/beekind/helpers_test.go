package beekind

import (
	"strings"
	"testing"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
)

// recorder is a Surface that counts what was drawn.
type recorder struct {
	colour core.RGBA
	clears int
	rects  int
	images []drawnImage
}

type drawnImage struct {
	x, y, id int
	flip     core.FlipMode
}

func (r *recorder) SetColour(c core.RGBA) { r.colour = c }
func (r *recorder) Clear() { r.clears++ }
func (r *recorder) SolidRect(_, _, _, _ int) { r.rects++ }

func (r *recorder) Image(x, y, id int, flip core.FlipMode) {
	r.images = append(r.images, drawnImage{x, y, id, flip})
}

func (r *recorder) drew(id int) bool {
	for _, im := range r.images {
		if im.id == id {
			return true
		}
	}
	return false
}

// flatTiles is a 20x8 level with solid ground along the bottom row.
var flatTiles = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"####################",
}

// emptyChars is a char layer holding only the player start.
var emptyChars = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"..P.................",
	"....................",
}

// buildLevel parses a level from tile and char rows.
func buildLevel(t *testing.T, tiles, chars []string) levels.Level {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("title: Test Meadow\nhints:\n  - \"[51]Welcome\"\ntiles: |\n")
	for _, row := range tiles {
		sb.WriteString("  " + row + "\n")
	}
	sb.WriteString("chars: |\n")
	for _, row := range chars {
		sb.WriteString("  " + row + "\n")
	}

	lvl, err := levels.ParseYAML([]byte(sb.String()))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	lvl.ID = "test"
	return lvl
}

// newPlaying returns a game already playing the given levels' first level.
func newPlaying(t *testing.T, set levels.Set) (*Game, *core.ButtonState) {
	t.Helper()

	in := core.NewButtonState()
	g := New(in, Options{Levels: set, Seed: 1})
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	g.surface = &recorder{}
	g.newLevel(0)
	g.startPlaying()
	if g.State() != StatePlaying {
		t.Fatalf("expected playing state, got %v", g.State())
	}
	return g, in
}

// flatGame returns a game playing a flat level with no entities.
func flatGame(t *testing.T) (*Game, *core.ButtonState) {
	t.Helper()
	return newPlaying(t, levels.Set{buildLevel(t, flatTiles, emptyChars)})
}

// add places an entity built the way level loading builds it.
func (g *Game) add(sprite int, x, y float64) *Char {
	c := g.newChar(sprite, x, y)
	c.Dwell = 0
	g.chars = append(g.chars, c)
	return c
}
