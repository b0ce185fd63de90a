package tui

import "github.com/charmbracelet/bubbles/key"

// ConverterKeyMap defines the key bindings for the converter screen.
// Letters are left to the text input, so every binding uses a modifier or
// a non-printing key.
type ConverterKeyMap struct {
	NextTarget key.Binding
	PrevTarget key.Binding
	Save       key.Binding
	History    key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ConverterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTarget, k.Save, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ConverterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTarget, k.PrevTarget, k.Save},
		{k.History, k.Quit},
	}
}

// DefaultConverterKeyMap returns default key bindings.
func DefaultConverterKeyMap() ConverterKeyMap {
	return ConverterKeyMap{
		NextTarget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next format"),
		),
		PrevTarget: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev format"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save to history"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Use  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Use, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Use, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Use: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
