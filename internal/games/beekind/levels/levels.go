// Package levels provides the level data for Bee Kind: a tile layer used for
// collision and pathfinding, a char layer that seeds entities, a title and
// the hint messages shown when the level starts.
//
// Cell values are stored the way the simulation consumes them: 0 is empty and
// any other value is a sprite id plus one.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoLevels is returned when a source yields no level files.
var ErrNoLevels = errors.New("levels: no level files found")

//go:embed data/*.yaml
var embedded embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Title    string
	Width    int
	Height   int
	Tiles    []uint8 // collision layer, row-major
	Chars    []uint8 // entity layer, row-major
	Hints    []string
	FilePath string
}

// Tile returns the stored tile value at (x, y), or 0 outside the level or
// past the end of a short layer.
func (l *Level) Tile(x, y int) uint8 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	i := y*l.Width + x
	if i >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[i]
}

// Char returns the stored char value at (x, y), or 0 outside the level or
// past the end of a short layer.
func (l *Level) Char(x, y int) uint8 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	i := y*l.Width + x
	if i >= len(l.Chars) {
		return 0
	}
	return l.Chars[i]
}

// Provider exposes an ordered set of levels to the simulation.
type Provider interface {
	Count() int
	Level(i int) (*Level, bool)
}

// Set is an ordered, in-memory level list.
type Set []Level

// Count returns the number of levels.
func (s Set) Count() int {
	return len(s)
}

// Level returns level i, or false when i is out of range.
func (s Set) Level(i int) (*Level, bool) {
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return &s[i], true
}

// Default returns the embedded level set.
func Default() (Set, error) {
	return loadFS(embedded, "data")
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() (Set, error) {
	var set Set

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		set = append(set, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}

	sortByID(set)
	return set, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.ID = idFromPath(path)
	level.FilePath = path
	return level, nil
}

func loadFS(fsys fs.FS, dir string) (Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var set Set
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(filepath.Ext(e.Name())) {
			continue
		}
		path := dir + "/" + e.Name()
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", path, err)
		}
		level, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", path, err)
		}
		level.ID = idFromPath(e.Name())
		level.FilePath = path
		set = append(set, level)
	}
	if len(set) == 0 {
		return nil, ErrNoLevels
	}

	sortByID(set)
	return set, nil
}

func sortByID(set Set) {
	sort.SliceStable(set, func(i, j int) bool {
		return set[i].ID < set[j].ID
	})
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
