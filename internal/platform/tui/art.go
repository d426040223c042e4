package tui

import (
	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
)

// spriteRows is the cell art of each sprite id: a 16px tile covers four
// columns and two rows. Actors face right; the screen mirrors them.
var spriteRows = map[int][2]string{
	beekind.SpriteCloud:          {" ▄▄▄", "▀▀▀▀"},
	beekind.SpriteCloudRight:     {"▄▄  ", "▀▀▀ "},
	beekind.SpriteCloudSmall:     {"    ", " ▄▄ "},
	beekind.SpriteCloudSmall + 1: {"  ▄ ", " ▀▀▀"},
	beekind.SpriteShield:         {" /\\ ", " \\/ "},

	beekind.SpriteToadstool:      {"▄██▄", " ▐▌ "},
	beekind.SpriteToadstoolShort: {"    ", "▄██▄"},
	beekind.SpriteFlower:         {"@  @", "\\||/"},
	beekind.SpriteFlowerSingle:   {" @  ", " |  "},
	beekind.SpritePlant:          {" \\| ", " |/ "},
	beekind.SpritePlantShort:     {"    ", " \\/ "},
	beekind.SpriteHive:           {"/##\\", "\\##/"},
	beekind.SpriteHiveBroken:     {"/# \\", "\\ #/"},
	beekind.SpriteTreeCanopy:     {"▓▓▓▓", "▓▓▓▓"},
	beekind.SpriteTreeTrunk:      {" ██ ", " ██ "},

	beekind.SpritePlayerGun:     {" () ", "/█>="},
	beekind.SpritePlayerGun + 1: {" () ", "<█>="},
	beekind.SpritePlayerGun + 2: {" () ", "/█\\="},
	beekind.SpriteFlash:         {"  * ", "    "},
	beekind.SpriteShot:          {"  • ", "    "},
	beekind.SpritePlayer:        {" () ", "/██\\"},
	beekind.SpritePlayer + 1:    {" () ", " ██ "},

	beekind.SpriteGun:        {"    ", "r== "},
	beekind.SpriteBee:        {" ~~ ", "(##>"},
	beekind.SpriteBee + 1:    {" ^^ ", "(##>"},
	beekind.SpriteZombee:     {" ~~ ", "{xx>"},
	beekind.SpriteZombee + 1: {" ^^ ", "{xx>"},
	beekind.SpriteGrub:       {"    ", "(ooo"},
	beekind.SpriteGrub + 1:   {"    ", "oOoo"},
}

// terrainRows returns art for the tile ids not in spriteRows.
func terrainRows(id int) ([2]string, bool) {
	switch {
	case id == beekind.SpriteToggle, id == 14:
		return [2]string{}, false
	case (id >= 3 && id <= 5) || (id >= 19 && id <= 22) || id == 27 || id == 28:
		return [2]string{"▀▀▀▀", "    "}, true
	case id >= 6 && id <= 8:
		return [2]string{"▄▄▄▄", "████"}, true
	case id == 9:
		return [2]string{"\"\"\"\"", "████"}, true
	case id == 13:
		return [2]string{"▐███", "▐███"}, true
	case id == 15:
		return [2]string{"███▌", "███▌"}, true
	case id == 24:
		return [2]string{"████", "▀▀▀▀"}, true
	case id > 0 && id < beekind.SpriteToadstool:
		return [2]string{"████", "████"}, true
	}
	return [2]string{}, false
}

// SpriteArt looks up the cell art for a sprite. It is installed on the
// screen with SetArt.
func SpriteArt(id int) (core.Art, bool) {
	rows, ok := spriteRows[id]
	if !ok {
		rows, ok = terrainRows(id)
	}
	if !ok {
		return core.Art{}, false
	}
	return core.Art{Rows: rows, Color: beekind.SpriteColour(id)}, true
}
