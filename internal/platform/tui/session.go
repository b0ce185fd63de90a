package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorx/internal/color"
	"github.com/vovakirdan/colorx/internal/converter"
	"github.com/vovakirdan/colorx/internal/storage"
)

// SessionModel manages the full interactive flow: converter -> history -> converter.
// This is the top-level model used both locally and for SSH sessions.
type SessionModel struct {
	store     *storage.Store // Optional, can be nil
	svc       *converter.Service
	converter ConverterModel
	history   *HistoryModel
	width     int
	height    int
	quitting  bool
}

// NewSessionModel creates a new session model. A nil store disables history.
func NewSessionModel(svc *converter.Service, store *storage.Store, target color.Notation, width, height int) SessionModel {
	return SessionModel{
		store:     store,
		svc:       svc,
		converter: NewConverterModel(svc, target, store != nil, width, height),
		width:     width,
		height:    height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.converter.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		if m.history != nil {
			newModel, _ := m.converter.Update(wsm)
			if cm, ok := newModel.(ConverterModel); ok {
				m.converter = cm
			}
		}
	}

	if m.history != nil {
		return m.updateHistory(msg)
	}
	return m.updateConverter(msg)
}

// updateConverter handles updates while the converter is shown.
func (m SessionModel) updateConverter(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.converter.Update(msg)
	if cm, ok := newModel.(ConverterModel); ok {
		m.converter = cm
	}

	if m.converter.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.converter.WantsHistory() {
		m.converter.wantsHistory = false
		h := NewHistoryModel(m.store, m.width, m.height)
		m.history = &h
		return m, m.history.Init()
	}

	return m, cmd
}

// updateHistory handles updates while the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if hm, ok := newModel.(HistoryModel); ok {
		m.history = &hm
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		if sel := m.history.Selected(); sel != "" {
			m.converter.SetInput(sel)
		}
		m.history = nil
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}
	return m.converter.View()
}

// Converter returns the converter screen state.
func (m SessionModel) Converter() ConverterModel {
	return m.converter
}

// InHistory reports whether the history screen is shown.
func (m SessionModel) InHistory() bool {
	return m.history != nil
}

// Run runs an interactive session on the local terminal.
func Run(svc *converter.Service, store *storage.Store, target color.Notation, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(svc, store, target, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
