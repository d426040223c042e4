package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beekind/internal/core"
	"github.com/vovakirdan/beekind/internal/games/beekind"
	"github.com/vovakirdan/beekind/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	m, err := NewModel(Options{Runtime: core.RuntimeConfig{TickRate: 30, Seed: 7}})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartsInIntro(t *testing.T) {
	m := newTestModel(t)
	if m.Game().State() != beekind.StateIntro {
		t.Errorf("expected intro, got %v", m.Game().State())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelMovementSkipsIntro(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, TickMsg{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(t, m, TickMsg{})

	if m.Game().State() != beekind.StateNewLevel {
		t.Errorf("movement should skip the intro, got %v", m.Game().State())
	}
}

func TestModelDebugToggle(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.input.Held(core.ButtonDebug) {
		t.Fatal("tab should switch the debug overlay on")
	}
	for i := 0; i < 60; i++ {
		m = step(t, m, TickMsg{})
	}
	if !m.input.Held(core.ButtonDebug) {
		t.Error("debug should stay on across frames")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.input.Held(core.ButtonDebug) {
		t.Error("second tab should switch the debug overlay off")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if view := next.View(); view != "" {
		t.Errorf("view after quit should be empty, got %d bytes", len(view))
	}
}

func TestModelViewShowsFrame(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = step(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "quit") {
		t.Error("view should include the help footer")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view should fill the terminal height, got %d lines", lines)
	}
}

func TestModelWithStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, err := NewModel(Options{Runtime: core.RuntimeConfig{Seed: 3}, Store: store})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	if m.config.TickRate != beekind.FPS {
		t.Errorf("zero tick rate should default to %d, got %d", beekind.FPS, m.config.TickRate)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00.0"},
		{6, "0:00.1"},
		{60, "0:01.0"},
		{3600 + 90, "1:01.5"},
	}
	for _, tt := range tests {
		if got := FormatTicks(tt.ticks); got != tt.want {
			t.Errorf("FormatTicks(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}
