// Package tui runs games in the terminal with Bubble Tea.
// It handles the UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdWindow is how many ticks a movement key stays held after its last
// press. It must outlast the terminal's initial auto-repeat delay.
func holdWindow(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tickRate / 2
}
