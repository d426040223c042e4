package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const playerSprite = 45

func TestDefaultLevels(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if set.Count() != 7 {
		t.Fatalf("expected 7 embedded levels, got %d", set.Count())
	}

	for i := 0; i < set.Count(); i++ {
		lvl, ok := set.Level(i)
		if !ok {
			t.Fatalf("Level(%d) missing", i)
		}
		t.Run(lvl.ID, func(t *testing.T) {
			if lvl.Title == "" {
				t.Error("level has no title")
			}
			if lvl.Width < 20 || lvl.Height < 15 {
				t.Errorf("level %dx%d is smaller than one screen", lvl.Width, lvl.Height)
			}
			if len(lvl.Tiles) != lvl.Width*lvl.Height || len(lvl.Chars) != lvl.Width*lvl.Height {
				t.Errorf("layer sizes %d/%d do not match %dx%d", len(lvl.Tiles), len(lvl.Chars), lvl.Width, lvl.Height)
			}
			if len(lvl.Hints) == 0 {
				t.Error("level has no hints")
			}

			players := 0
			for _, c := range lvl.Chars {
				if c == playerSprite+1 {
					players++
				}
			}
			if players != 1 {
				t.Errorf("expected exactly one player start, got %d", players)
			}
		})
	}

	first, _ := set.Level(0)
	if len(first.Hints) != 6 {
		t.Errorf("first level should carry the six intro hints, got %d", len(first.Hints))
	}
	if !strings.HasPrefix(first.Hints[0], "[10]") {
		t.Errorf("first hint should carry an icon tag, got %q", first.Hints[0])
	}
}

// Tile value 1 is walkable for the player but blocked for the pathfinder.
// Shipped levels are expected not to use it; any that do are reported.
func TestDefaultLevelsSoftTiles(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	for _, lvl := range set {
		for i, v := range lvl.Tiles {
			if v == 1 {
				t.Logf("%s: soft tile at (%d, %d) is walkable but not pathable", lvl.ID, i%lvl.Width, i/lvl.Width)
			}
		}
	}
}

func TestSetLevelOutOfRange(t *testing.T) {
	set := Set{{ID: "a"}}
	if _, ok := set.Level(-1); ok {
		t.Error("Level(-1) should not exist")
	}
	if _, ok := set.Level(1); ok {
		t.Error("Level(1) should not exist")
	}
	if lvl, ok := set.Level(0); !ok || lvl.ID != "a" {
		t.Error("Level(0) should return the first level")
	}
}

func TestLevelShortLayers(t *testing.T) {
	lvl := Level{Width: 4, Height: 2, Tiles: []uint8{1, 2, 3}}

	if got := lvl.Tile(2, 0); got != 3 {
		t.Errorf("Tile(2, 0) = %d, expected 3", got)
	}
	if got := lvl.Tile(3, 1); got != 0 {
		t.Errorf("Tile past the layer = %d, expected 0", got)
	}
	if got := lvl.Char(0, 0); got != 0 {
		t.Errorf("Char on an empty layer = %d, expected 0", got)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`title: Tiny
hints:
  - "[51]hello"
tiles: |
  ....
  .[].
  ####
chars: |
  P..b
  ....
  ....
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Title != "Tiny" || lvl.Width != 4 || lvl.Height != 3 {
		t.Fatalf("got %q %dx%d, expected Tiny 4x3", lvl.Title, lvl.Width, lvl.Height)
	}
	if got := lvl.Tile(1, 1); got != 4 {
		t.Errorf("Tile(1, 1) = %d, expected 4 ('[' is sprite 3)", got)
	}
	if got := lvl.Tile(0, 2); got != 8 {
		t.Errorf("Tile(0, 2) = %d, expected 8 ('#' is sprite 7)", got)
	}
	if got := lvl.Char(0, 0); got != playerSprite+1 {
		t.Errorf("Char(0, 0) = %d, expected player", got)
	}
	if got := lvl.Char(3, 0); got != 52 {
		t.Errorf("Char(3, 0) = %d, expected bee (52)", got)
	}
	if lvl.Tile(-1, 0) != 0 || lvl.Tile(4, 0) != 0 || lvl.Char(0, 3) != 0 {
		t.Error("out of range cells should read as empty")
	}
}

func TestParseYAMLLegendOverride(t *testing.T) {
	data := []byte(`title: Custom
legend:
  tiles:
    "@": 21
    "#": -1
tiles: |
  @#
chars: |
  ..
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Tile(0, 0) != 22 {
		t.Errorf("'@' should map to sprite 21, got stored %d", lvl.Tile(0, 0))
	}
	if lvl.Tile(1, 0) != 0 {
		t.Errorf("'#' overridden to -1 should be empty, got %d", lvl.Tile(1, 0))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown rune",
			data:    "title: x\ntiles: |\n  ..\n  .Q\nchars: |\n  ..\n  ..\n",
			wantErr: "unknown rune 'Q' at (1, 1)",
		},
		{
			name:    "ragged row",
			data:    "title: x\ntiles: |\n  ...\n  ..\nchars: |\n  ...\n  ...\n",
			wantErr: "tiles row 1 has width 2, expected 3",
		},
		{
			name:    "layer height mismatch",
			data:    "title: x\ntiles: |\n  ..\n  ..\nchars: |\n  ..\n",
			wantErr: "chars layer has 1 rows",
		},
		{
			name:    "empty tiles",
			data:    "title: x\n",
			wantErr: "tiles layer is empty",
		},
		{
			name:    "bad legend key",
			data:    "title: x\nlegend:\n  chars:\n    ab: 3\ntiles: |\n  .\nchars: |\n  .\n",
			wantErr: "single character",
		},
		{
			name:    "invalid yaml",
			data:    "title: [\n",
			wantErr: "yaml unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.yaml", "title: Second\ntiles: |\n  ##\nchars: |\n  P.\n")
	write("a.yml", "title: First\ntiles: |\n  ##\nchars: |\n  .P\n")
	write("notes.txt", "ignored")

	set, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if set.Count() != 2 {
		t.Fatalf("expected 2 levels, got %d", set.Count())
	}
	if set[0].ID != "a" || set[1].ID != "b" {
		t.Errorf("levels not sorted by ID: %s, %s", set[0].ID, set[1].ID)
	}
	if set[0].FilePath != filepath.Join(dir, "a.yml") {
		t.Errorf("FilePath = %q", set[0].FilePath)
	}
}

func TestLoaderErrors(t *testing.T) {
	empty := t.TempDir()
	if _, err := NewLoader(empty).LoadAll(); !errors.Is(err, ErrNoLevels) {
		t.Errorf("empty directory: expected ErrNoLevels, got %v", err)
	}

	bad := t.TempDir()
	path := filepath.Join(bad, "broken.yaml")
	if err := os.WriteFile(path, []byte("title: x\ntiles: |\n  .?\nchars: |\n  ..\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewLoader(bad).LoadAll()
	if err == nil {
		t.Fatal("expected an error for a broken level file")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("error should name the file, got %q", err)
	}

	if _, err := NewLoader(filepath.Join(bad, "missing")).LoadAll(); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
