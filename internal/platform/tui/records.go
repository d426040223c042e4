package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beekind/internal/games/beekind"
	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the level sidebar
	sidebarWidth       = 24
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel lists the clears of each level, fastest first.
type RecordsModel struct {
	titles      []string // level titles by index
	cursor      int      // selected level
	store       *storage.Store
	clears      []storage.ClearEntry
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRecordsModel creates a records model over the given levels.
func NewRecordsModel(store *storage.Store, set levels.Provider, width, height int) RecordsModel {
	titles := make([]string, set.Count())
	for i := range titles {
		if lvl, ok := set.Level(i); ok {
			titles[i] = lvl.Title
		}
	}

	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		titles:      titles,
		store:       store,
		keys:        DefaultRecordsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadClears()
	return m
}

func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 10},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadClears loads the clears of the selected level.
func (m *RecordsModel) loadClears() {
	m.clears = nil
	if m.store != nil && len(m.titles) > 0 {
		if clears, err := m.store.LevelClears(m.cursor); err == nil {
			m.clears = clears
		}
	}

	rows := make([]table.Row, len(m.clears))
	for i, c := range m.clears {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			FormatTicks(c.Ticks),
			fmt.Sprintf("%d", c.Seed%1_000_000),
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// FormatTicks renders a tick count as m:ss.t of play time.
func FormatTicks(ticks int) string {
	tenths := ticks * 10 / (beekind.FPS * 2)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.titles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.titles)
				m.loadClears()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.titles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.titles)) % len(m.titles)
				m.loadClears()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.loadClears()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "LEVEL RECORDS"
	if len(m.titles) > 0 {
		title = fmt.Sprintf("LEVEL %d RECORDS - %s", m.cursor+1, m.titles[m.cursor])
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Width(sidebarWidth).Render(m.renderSidebar()), "  ", content)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RecordsModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, t := range m.titles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := fmt.Sprintf("%d %s", i+1, t)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}
	return sidebar.String()
}

func (m RecordsModel) renderTableContent() string {
	if len(m.clears) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No clears recorded yet.\nGrow the colony to set a record!")
	}
	return m.table.View()
}

// RunRecords runs the records screen until the user quits.
func RunRecords(store *storage.Store, set levels.Provider, width, height int) error {
	p := tea.NewProgram(
		NewRecordsModel(store, set, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
