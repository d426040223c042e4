package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beekind/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Debug      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Debug, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. WASD, ZQSD and the arrows
// move; enter and space fire. Q is a direction, so quitting is on esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "z"),
			key.WithHelp("↑/w", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "duck"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "q"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "fire"),
		),
		Debug: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "debug"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Button translates a key message to the logical button it presses.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Fire):
		return core.ButtonFire, true
	}
	return 0, false
}

// holdTracker emulates key release for terminals, which only report presses.
// A press holds its button for a number of frames; auto-repeat keeps it held.
type holdTracker struct {
	state   *core.ButtonState
	expires map[core.Button]int
	initial int // frames held after the first press, covering the repeat delay
	repeat  int // frames held after each repeat
}

func newHoldTracker(state *core.ButtonState, tickRate int) *holdTracker {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &holdTracker{
		state:   state,
		expires: make(map[core.Button]int),
		initial: max(tickRate/2, 1),
		repeat:  max(tickRate/6, 1),
	}
}

// press holds b and releases the opposite direction.
func (h *holdTracker) press(b core.Button) {
	if opp, ok := opposite(b); ok {
		h.release(opp)
	}

	if h.state.Held(b) {
		h.expires[b] = h.repeat
	} else {
		h.expires[b] = h.initial
	}
	h.state.Set(b)
}

func (h *holdTracker) release(b core.Button) {
	delete(h.expires, b)
	h.state.Release(b)
}

// tick ages held buttons by one frame and releases the expired ones.
func (h *holdTracker) tick() {
	for b, n := range h.expires {
		if n <= 1 {
			h.release(b)
			continue
		}
		h.expires[b] = n - 1
	}
}

func opposite(b core.Button) (core.Button, bool) {
	switch b {
	case core.ButtonLeft:
		return core.ButtonRight, true
	case core.ButtonRight:
		return core.ButtonLeft, true
	case core.ButtonUp:
		return core.ButtonDown, true
	case core.ButtonDown:
		return core.ButtonUp, true
	}
	return 0, false
}
