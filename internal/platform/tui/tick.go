// Package tui provides the Bubble Tea integration for colorx.
// It hosts the interactive converter, the history browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 2 * time.Second

// ClearStatusMsg is sent when a status message expires.
type ClearStatusMsg struct {
	id int
}

// clearStatusCmd returns a command that expires status message id.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{id: id}
	})
}
