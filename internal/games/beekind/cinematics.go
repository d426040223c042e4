package beekind

import (
	"fmt"
	"math"

	"github.com/vovakirdan/beekind/internal/core"
)

const (
	titleText  = " BEE KIND "
	titlePitch = 32 // pixels between title letters
	swarmSize  = 50
)

// intro draws the title cinematic. Reaching the end, or any movement key,
// starts the first level.
func (g *Game) intro(percent float64) {
	if percent >= 98 || core.AnyMovement(g.input) {
		g.newLevel(0)
		return
	}

	tenth := int(math.Floor(percent / 10))
	for i := 0; i < tenth && i < len(titleText); i++ {
		g.write(float64(i*titlePitch), 30, titleText[i:i+1], 5, colourGold)
	}
	if tenth < len(titleText) && titleText[tenth] != ' ' {
		g.generateParticles((float64(tenth)+0.4)*titlePitch, 30, 4, 8, colourGold)
	}

	frame := 1
	if int(math.Floor(percent/2))%2 == 1 {
		frame = 0
	}
	walk := math.Floor(percent / 100 * screenW)
	slide := screenW - walk
	g.drawSprite(SpriteGrub+frame, slide+50, 152, true)
	g.write(slide+66, 160, "GRUB - eats toadstools, becomes ZOMBEE", 1, colourCaption)
	g.drawSprite(SpriteZombee+frame, slide+66, 136, true)
	g.write(slide+82, 140, "ZOMBEE - steals pollen, breaks hives", 1, colourCaption)
	g.drawSprite(SpritePlayer+frame, walk, 112, false)
	g.drawSprite(SpriteBee+frame, slide, 152, true)
	g.drawSprite(SpriteBee+1-frame, slide+16, 136, true)

	if int(math.Floor(percent))%16 <= 8 {
		keys := "WASD"
		if int(math.Floor(percent/2))%32 >= 16 {
			keys = "ZQSD"
		}
		legend := keys + "/CURSORS + ENTER/SPACE/SHIFT"
		x := float64(min(112, screenW-g.textWidth(legend, 1)-2))
		g.write(x, 220, legend, 1, colourCaption)
		g.write(x, 230, "or use GAMEPAD", 1, colourCaption)
		g.drawSprite(SpriteShield, x-24, 224, false)
	}

	g.drawParticles()
	g.particleCheck()
}

// levelInfo draws the title card shown before a level starts.
func (g *Game) levelInfo() {
	_, needed := g.Colony()
	g.write(117, 40, fmt.Sprintf("Level %d", g.level+1), 3, colourGold)
	if lvl, ok := g.levels.Level(g.level); ok {
		g.writeCentred(120, lvl.Title, 2, core.ColorWhite)
	}
	g.writeCentred(screenH-20, fmt.Sprintf("Increase colony to %d bees", needed), 1, colourGold)
}

// endGame draws the closing cinematic: a bee swarm bouncing around the
// screen. Reaching the end, or any movement key, returns to the intro.
func (g *Game) endGame(percent float64) {
	if g.state != StateComplete {
		return
	}
	if percent >= 98 || core.AnyMovement(g.input) {
		g.state = StateIntro
		g.tl.Schedule(0, g.resetToIntro)
		return
	}

	if percent == 0 {
		g.chars = g.chars[:0]
		for i := 0; i < swarmSize; i++ {
			bee := &Char{
				Sprite: SpriteBee,
				X:      math.Floor(g.rnd() * screenW),
				Y:      math.Floor(g.rnd() * screenH),
				HS:     1,
				VS:     1,
				Kind:   &Inert{},
			}
			if g.rnd() < 0.5 {
				bee.HS = -1
			}
			if g.rnd() < 0.5 {
				bee.VS = -1
			}
			g.chars = append(g.chars, bee)
		}
		g.log.Info("game complete", "levels", g.levels.Count())
	}

	g.writeCentred(30, "CONGRATULATIONS", 4, colourGold)
	g.writeCentred(140, "The Queen Bee thanks you for helping", 2, core.ColorWhite)
	g.writeCentred(160, "to save the bees and planet", 2, core.ColorWhite)

	frame := 1
	if int(math.Floor(percent/2))%2 == 1 {
		frame = 0
	}
	g.drawSprite(SpritePlayer+frame, screenW/2, 112, false)

	for _, c := range g.chars {
		c.Sprite = SpriteBee + frame
		g.drawSprite(c.Sprite, c.X, c.Y, c.HS < 0)

		c.X += c.HS
		if c.X < 0 || c.X+TileSize > screenW {
			c.HS = -c.HS
		}
		c.Y += c.VS
		if c.Y < 0 || c.Y+TileSize > screenH {
			c.VS = -c.VS
		}
	}
}
