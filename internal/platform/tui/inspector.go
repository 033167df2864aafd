package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-legend/internal/games/legend"
)

// InspectorKeyMap defines the key bindings for the world inspector.
type InspectorKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k InspectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k InspectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultInspectorKeyMap returns default key bindings.
func DefaultInspectorKeyMap() InspectorKeyMap {
	return InspectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InspectorModel lists the scenes of a world.
type InspectorModel struct {
	world    *legend.World
	table    table.Model
	help     help.Model
	keys     InspectorKeyMap
	width    int
	height   int
	quitting bool
}

// NewInspectorModel creates an inspector for world.
func NewInspectorModel(world *legend.World, width, height int) InspectorModel {
	m := InspectorModel{
		world:  world,
		help:   help.New(),
		keys:   DefaultInspectorKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetRows(SceneRows(world))
	return m
}

func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Scene", Width: 7},
		{Title: "Music", Width: 16},
		{Title: "Solid", Width: 6},
		{Title: "Enemies", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SceneRows describes every scene: position, music, solid tiles and the
// enemies per variant. The spawn scene is starred.
func SceneRows(w *legend.World) []table.Row {
	spawn := w.SpawnScene()
	rows := make([]table.Row, 0, w.Cols*w.Rows)
	for _, sc := range w.Scenes() {
		name := fmt.Sprintf("%d,%d", sc.Col, sc.Row)
		if sc == spawn {
			name += " *"
		}
		rows = append(rows, table.Row{
			name,
			sc.Music,
			fmt.Sprintf("%d", len(sc.Solids())),
			enemySummary(sc.Variants()),
		})
	}
	return rows
}

func enemySummary(counts map[legend.Variant]int) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(counts))
	for _, v := range slices.Sorted(maps.Keys(counts)) {
		parts = append(parts, fmt.Sprintf("%d %s", counts[v], v))
	}
	return strings.Join(parts, ", ")
}

// Init initializes the inspector.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(SceneRows(m.world))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the inspector.
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := fmt.Sprintf("WORLD %dx%d - %d scenes to clear", m.world.Cols, m.world.Rows, m.world.TargetScore())
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunWorldInspector runs the scene table until the user quits.
func RunWorldInspector(world *legend.World, width, height int) error {
	p := tea.NewProgram(
		NewInspectorModel(world, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
