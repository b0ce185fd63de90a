package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorx/internal/storage"
)

// History layout constants
const (
	maxHistory    = 100 // Max conversions to load
	historyMargin = 8   // Rows reserved for title, help and borders
)

// HistoryModel is the Bubble Tea model for browsing past conversions.
type HistoryModel struct {
	store     *storage.Store
	entries   []storage.Conversion
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	loadErr   error
	selected  string // Input picked with the Use binding
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history model and loads the latest conversions.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Input", Width: 26},
		{Title: "Target", Width: 8},
		{Title: "Output", Width: 26},
	}

	// Give spare width to the text columns
	spare := m.width - 4 - 12 - 8 - 26 - 26 - 8
	if spare > 0 {
		columns[1].Width += spare / 2
		columns[3].Width += spare - spare/2
	}

	height := m.height - historyMargin
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads the latest conversions from the store.
func (m *HistoryModel) load() {
	m.entries = nil
	m.loadErr = nil
	if m.store != nil {
		m.entries, m.loadErr = m.store.RecentConversions(maxHistory)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.CreatedAt.Format("Jan 02 15:04"),
			e.Input,
			e.Target,
			e.Output,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Use):
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.entries) {
				m.selected = m.entries[idx].Input
				m.goingBack = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("CONVERSION HISTORY", m.width)))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(m.loadErr.Error()))
	case len(m.entries) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(panelStyle.Render(emptyStyle.Render("No conversions recorded yet.\nPress enter in the converter to save one.")))
	default:
		b.WriteString(panelStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Entries returns the loaded conversions, newest first.
func (m HistoryModel) Entries() []storage.Conversion {
	return m.entries
}

// Selected returns the input picked by the user, or "".
func (m HistoryModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to the converter.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
