package beekind

import (
	"strconv"
	"strings"
)

// rollFrames is how long the hint box takes to roll up when it expires.
const rollFrames = 8

type message struct {
	text   string
	frames int
}

// messageBox is the hint box in the top-right corner and its backlog.
type messageBox struct {
	text   string
	frames int // frames left on screen, 0 when hidden
	queue  []message
}

func (m *messageBox) clear() {
	m.text = ""
	m.frames = 0
	m.queue = nil
}

// showMessage displays text for frames rendered frames. A message arriving
// while another is shown, or outside play, waits in the queue. A leading
// "[id]" tag on the first line draws sprite id as an icon.
func (g *Game) showMessage(text string, frames int) {
	if g.msg.frames == 0 && g.state == StatePlaying {
		g.msg.text = text
		g.msg.frames = frames
		return
	}
	g.msg.queue = append(g.msg.queue, message{text: text, frames: frames})
}

// parseIcon splits a "[id]" tag off the front of line. It returns -1 when
// line has no valid tag.
func parseIcon(line string) (int, string) {
	if !strings.HasPrefix(line, "[") {
		return -1, line
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return -1, line
	}
	id, err := strconv.Atoi(line[1:end])
	if err != nil {
		return -1, line
	}
	return id, line[end+1:]
}

// drawMessageBox renders the current hint, or promotes the next queued one.
func (g *Game) drawMessageBox() {
	if g.msg.frames == 0 {
		if g.state == StatePlaying && len(g.msg.queue) > 0 {
			next := g.msg.queue[0]
			g.msg.queue = g.msg.queue[1:]
			g.showMessage(next.text, next.frames)
		}
		return
	}

	fw, fh := g.textMetrics()
	lines := strings.Split(g.msg.text, "\n")
	icon, first := parseIcon(lines[0])
	lines[0] = first

	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	width := float64((longest + 2) * fw)
	height := float64((len(lines) + 2) * (fh + 1))
	top := 0.0
	if icon >= 0 {
		width += float64(TileSize + 2*fw)
		if len(lines) == 1 {
			top = 0.5
		}
		height = max(height, float64(TileSize+2*fh))
	}
	if g.msg.frames < rollFrames {
		height = height * float64(g.msg.frames) / rollFrames
	}

	s := g.surface
	x := float64(screenW) - (width + float64(fw))
	s.SetColour(colourMessage)
	s.SolidRect(int(x), fh, int(width), int(height))

	if g.msg.frames >= rollFrames {
		left := float64(screenW) - width
		if icon >= 0 {
			g.drawSprite(icon, left+float64(g.xoff), float64(2*fh+g.yoff), false)
			left += float64(TileSize + fw)
		}
		for i, l := range lines {
			g.write(left, (float64(i)+2+top)*float64(fh+1), l, 1, colourInk)
		}
	}

	g.msg.frames--
}
