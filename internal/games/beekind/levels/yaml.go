package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Title  string     `yaml:"title"`
	Tiles  string     `yaml:"tiles"`
	Chars  string     `yaml:"chars"`
	Hints  []string   `yaml:"hints,omitempty"`
	Legend YAMLLegend `yaml:"legend,omitempty"`
}

// YAMLLegend overrides or extends the default rune to sprite mapping.
// Values are sprite ids; -1 maps a rune to an empty cell.
type YAMLLegend struct {
	Tiles map[string]int `yaml:"tiles,omitempty"`
	Chars map[string]int `yaml:"chars,omitempty"`
}

// Runes that always mean an empty cell.
const emptyRunes = ". "

// DefaultTileLegend maps tile layer runes to sprite ids.
var DefaultTileLegend = map[rune]int{
	'~': 0,  // soft backdrop, walkable but not pathable
	'[': 3,  // ledge, left end
	'=': 4,  // ledge
	']': 5,  // ledge, right end
	'<': 6,  // earth top, left
	'#': 7,  // earth top
	'>': 8,  // earth top, right
	'%': 9,  // grass top
	'(': 13, // wall, left face
	'|': 14, // blank
	')': 15, // wall, right face
	'x': 16, // earth fill
	'-': 19, // thin ledge
	'_': 21, // thick ledge
	'v': 24, // underside
}

// DefaultCharLegend maps char layer runes to sprite ids.
var DefaultCharLegend = map[rune]int{
	'^': 0,  // gravity toggle
	'S': 10, // shield
	'T': 30, // toadstool, tall
	't': 31, // toadstool, short
	'F': 32, // flower, double
	'f': 33, // flower, single
	'p': 34, // plant
	'H': 36, // hive
	'h': 37, // hive, broken
	'y': 38, // tree canopy
	'Y': 39, // tree trunk
	'P': 45, // player start
	'G': 50, // honey gun
	'b': 51, // bee
	'z': 53, // zombee
	'g': 55, // grub
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	tileLegend, err := mergeLegend(DefaultTileLegend, yl.Legend.Tiles)
	if err != nil {
		return Level{}, fmt.Errorf("tile legend: %w", err)
	}
	charLegend, err := mergeLegend(DefaultCharLegend, yl.Legend.Chars)
	if err != nil {
		return Level{}, fmt.Errorf("char legend: %w", err)
	}

	tileRows := splitLayer(yl.Tiles)
	charRows := splitLayer(yl.Chars)
	if len(tileRows) == 0 {
		return Level{}, fmt.Errorf("tiles layer is empty")
	}
	if len(charRows) != len(tileRows) {
		return Level{}, fmt.Errorf("chars layer has %d rows, tiles layer has %d", len(charRows), len(tileRows))
	}

	width := len([]rune(tileRows[0]))
	height := len(tileRows)

	tiles, err := decodeLayer("tiles", tileRows, width, tileLegend)
	if err != nil {
		return Level{}, err
	}
	chars, err := decodeLayer("chars", charRows, width, charLegend)
	if err != nil {
		return Level{}, err
	}

	return Level{
		Title:  yl.Title,
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Chars:  chars,
		Hints:  yl.Hints,
	}, nil
}

func mergeLegend(base map[rune]int, override map[string]int) (map[rune]int, error) {
	out := make(map[rune]int, len(base)+len(override))
	for r, id := range base {
		out[r] = id
	}
	for key, id := range override {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("key %q must be a single character", key)
		}
		if id < -1 || id > 254 {
			return nil, fmt.Errorf("sprite id %d for %q out of range", id, key)
		}
		out[runes[0]] = id
	}
	return out, nil
}

// splitLayer splits a block scalar into rows, dropping trailing blank lines.
func splitLayer(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	rows := strings.Split(s, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func decodeLayer(name string, rows []string, width int, legend map[rune]int) ([]uint8, error) {
	out := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%s row %d has width %d, expected %d", name, y, len(runes), width)
		}
		for x, r := range runes {
			if strings.ContainsRune(emptyRunes, r) {
				out = append(out, 0)
				continue
			}
			id, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%s: unknown rune %q at (%d, %d)", name, r, x, y)
			}
			if id < 0 {
				out = append(out, 0)
				continue
			}
			out = append(out, uint8(id+1))
		}
	}
	return out, nil
}
