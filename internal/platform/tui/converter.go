package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorx/internal/color"
	"github.com/vovakirdan/colorx/internal/converter"
)

// Converter layout constants
const (
	inputWidth    = 40
	swatchWidth   = 24
	swatchHeight  = 3
	minWidthSplit = 72 // Minimum width to show swatch beside the outputs
)

// ConverterModel is the Bubble Tea model for live color conversion.
// Every keystroke re-parses the input and previews all notations; Enter
// records the conversion to the selected target notation.
type ConverterModel struct {
	svc      *converter.Service
	input    textinput.Model
	target   color.Notation
	results  []converter.Result
	err      error
	status   string
	statusID int
	canSave  bool
	keys     ConverterKeyMap
	help     help.Model
	width    int
	height   int

	quitting     bool
	wantsHistory bool
}

// NewConverterModel creates a converter model. canSave reports whether a
// history store is attached to svc.
func NewConverterModel(svc *converter.Service, target color.Notation, canSave bool, width, height int) ConverterModel {
	ti := textinput.New()
	ti.Placeholder = "#1e90ff, rgb(30, 144, 255) or %0.118, 0.565, 1, 1"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = inputWidth
	ti.Focus()

	if target == 0 {
		target = color.NotationHex
	}

	return ConverterModel{
		svc:     svc,
		input:   ti,
		target:  target,
		canSave: canSave,
		keys:    DefaultConverterKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
}

// Init initializes the converter model.
func (m ConverterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the converter.
func (m ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.NextTarget):
			m.target = cycleNotation(m.target, 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTarget):
			m.target = cycleNotation(m.target, -1)
			return m, nil

		case key.Matches(msg, m.keys.Save):
			return m.save()

		case key.Matches(msg, m.keys.History):
			if m.canSave {
				m.wantsHistory = true
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh re-parses the input and rebuilds every preview.
func (m *ConverterModel) refresh() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.results = nil
		m.err = nil
		return
	}
	m.results, m.err = m.svc.PreviewAll(value)
}

// save converts to the selected target and records it.
func (m ConverterModel) save() (tea.Model, tea.Cmd) {
	if len(m.results) == 0 {
		return m, nil
	}
	res, err := m.svc.Convert(m.input.Value(), m.target)
	if err != nil {
		m.err = err
		return m, nil
	}
	if m.canSave {
		return m.setStatus(fmt.Sprintf("saved %s -> %s", res.Input, res.Output))
	}
	return m.setStatus(res.Output)
}

func (m ConverterModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = s
	return m, clearStatusCmd(m.statusID)
}

// SetInput replaces the input text and refreshes the previews.
func (m *ConverterModel) SetInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.refresh()
}

// cycleNotation steps through the notations in listing order.
func cycleNotation(n color.Notation, step int) color.Notation {
	infos := color.Notations()
	idx := 0
	for i, info := range infos {
		if info.Notation == n {
			idx = i
			break
		}
	}
	idx = (idx + step + len(infos)) % len(infos)
	return infos[idx].Notation
}

// View renders the converter.
func (m ConverterModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("COLOR CONVERTER"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case len(m.results) > 0:
		b.WriteString(m.renderResults())
		b.WriteString("\n")
	default:
		b.WriteString(helpStyle.Render("Type a color to convert it."))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderResults renders the swatch and one row per notation.
func (m ConverterModel) renderResults() string {
	rows := make([]string, 0, len(m.results)+1)
	rows = append(rows, "  "+labelStyle.Render("detected")+m.results[0].Source.String())
	for _, res := range m.results {
		marker := "  "
		value := res.Output
		if res.Target == m.target {
			marker = "> "
			value = valueStyle.Render(value)
		}
		rows = append(rows, marker+labelStyle.Render(res.Target.String())+value)
	}
	outputs := panelStyle.Render(strings.Join(rows, "\n"))
	swatch := RenderSwatch(m.results[0].Color, swatchWidth, swatchHeight)

	if m.width >= minWidthSplit {
		return lipgloss.JoinHorizontal(lipgloss.Center, outputs, "  ", swatch)
	}
	return lipgloss.JoinVertical(lipgloss.Left, outputs, swatch)
}

// Target returns the selected target notation.
func (m ConverterModel) Target() color.Notation {
	return m.target
}

// Results returns the current previews, one per notation.
func (m ConverterModel) Results() []converter.Result {
	return m.results
}

// Err returns the current parse error, if any.
func (m ConverterModel) Err() error {
	return m.err
}

// Status returns the current status message.
func (m ConverterModel) Status() string {
	return m.status
}

// IsQuitting returns true if user wants to quit entirely.
func (m ConverterModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user asked for the history screen.
func (m ConverterModel) WantsHistory() bool {
	return m.wantsHistory
}
