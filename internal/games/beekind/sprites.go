package beekind

import "github.com/vovakirdan/beekind/internal/core"

// Sprite ids in the 16x16 tileset. Level cells store these plus one.
const (
	SpriteToggle     = 0  // gravity toggle, invisible in play
	SpriteCloud      = 1  // two-tile wide cloud, left half
	SpriteCloudRight = 2  // two-tile wide cloud, right half
	SpriteShield     = 10 // invulnerability pickup
	SpriteCloudSmall = 11 // parallax puff, two variants

	SpriteToadstool      = 30 // tall toadstool
	SpriteToadstoolShort = 31
	SpriteFlower         = 32 // double-headed flower
	SpriteFlowerSingle   = 33
	SpritePlant          = 34
	SpritePlantShort     = 35
	SpriteHive           = 36
	SpriteHiveBroken     = 37
	SpriteTreeCanopy     = 38
	SpriteTreeTrunk      = 39

	SpritePlayerGun = 40 // three frame walk cycle, 40 to 42
	SpriteFlash     = 43 // muzzle flash
	SpriteShot      = 44 // honey shot
	SpritePlayer    = 45 // two frame walk cycle, 45 and 46

	SpriteGun    = 50 // honey gun pickup
	SpriteBee    = 51 // bee, two frames
	SpriteZombee = 53 // zombee, two frames
	SpriteGrub   = 55 // grub, two frames
)

func isToadstool(id int) bool { return id == SpriteToadstool || id == SpriteToadstoolShort }
func isFlower(id int) bool    { return id == SpriteFlower || id == SpriteFlowerSingle }
func isHive(id int) bool      { return id == SpriteHive || id == SpriteHiveBroken }
func isBee(id int) bool       { return id == SpriteBee || id == SpriteBee+1 }
func isZombee(id int) bool    { return id == SpriteZombee || id == SpriteZombee+1 }
func isGrub(id int) bool      { return id == SpriteGrub || id == SpriteGrub+1 }

func isPlayerStart(id int) bool {
	return (id >= SpritePlayerGun && id <= SpritePlayerGun+2) || id == SpritePlayer || id == SpritePlayer+1
}

// isActor reports ids drawn as moving sprites. Actors sort after scenery so
// they render on top.
func isActor(id int) bool {
	return (id >= SpritePlayerGun && id <= SpritePlayer+1) || (id >= SpriteGun && id <= SpriteGrub+1)
}

// isLedge reports tile sprites a plant may spawn on.
func isLedge(id int) bool {
	switch {
	case id >= 3 && id <= 9:
		return true
	case id >= 19 && id <= 22:
		return true
	case id == 27 || id == 28:
		return true
	}
	return false
}

// Colours used by the simulation.
var (
	colourSky       = core.RGB(252, 223, 205)
	colourGold      = core.RGB(255, 191, 0)
	colourDust      = core.RGB(170, 170, 170)
	colourOrange    = core.RGB(252, 104, 59)
	colourBlue      = core.RGB(44, 197, 246)
	colourCaption   = core.RGB(240, 240, 240)
	colourHealthBar = core.RGB(0, 255, 0).WithAlpha(0.75)
	colourMessage   = core.ColorWhite.WithAlpha(0.75)
	colourInk       = core.ColorBlack.WithAlpha(0.75)
	colourDebug     = core.RGBA{A: 128}
	colourRandom    = core.RGBA{}
)

// SpriteName returns a short human-readable name for a sprite id, or "" when
// the id has no name.
func SpriteName(id int) string {
	switch {
	case id == SpriteToggle:
		return "toggle"
	case id == SpriteCloud || id == SpriteCloudRight || id == SpriteCloudSmall || id == SpriteCloudSmall+1:
		return "cloud"
	case id == SpriteShield:
		return "shield"
	case isToadstool(id):
		return "toadstool"
	case isFlower(id):
		return "flower"
	case id == SpritePlant || id == SpritePlantShort:
		return "plant"
	case isHive(id):
		return "hive"
	case id == SpriteTreeCanopy || id == SpriteTreeTrunk:
		return "tree"
	case isPlayerStart(id):
		return "rabbit"
	case id == SpriteFlash || id == SpriteShot:
		return "honey"
	case id == SpriteGun:
		return "gun"
	case isBee(id):
		return "bee"
	case isZombee(id):
		return "zombee"
	case isGrub(id):
		return "grub"
	case id > 0 && id < SpriteToadstool:
		return "terrain"
	}
	return ""
}

// SpriteColour returns the dominant colour of a sprite, for hosts that render
// sprites as blocks or glyphs rather than tileset images.
func SpriteColour(id int) core.RGBA {
	switch {
	case id == SpriteShield:
		return colourBlue
	case isToadstool(id):
		return colourOrange
	case isFlower(id):
		return core.RGB(255, 119, 168)
	case id == SpritePlant || id == SpritePlantShort:
		return core.RGB(0, 135, 81)
	case isHive(id):
		return colourGold
	case id == SpriteTreeCanopy:
		return core.RGB(0, 135, 81)
	case id == SpriteTreeTrunk:
		return core.RGB(171, 82, 54)
	case isPlayerStart(id):
		return core.RGB(194, 195, 199)
	case id == SpriteFlash || id == SpriteShot || id == SpriteGun:
		return core.RGB(255, 163, 0)
	case isBee(id):
		return core.RGB(255, 236, 39)
	case isZombee(id):
		return core.RGB(131, 118, 156)
	case isGrub(id):
		return core.RGB(255, 204, 170)
	case id == SpriteCloud || id == SpriteCloudRight || id == SpriteCloudSmall || id == SpriteCloudSmall+1:
		return core.ColorWhite
	case id > 0 && id < SpriteToadstool:
		return core.RGB(95, 87, 79)
	}
	return core.ColorBlack
}
