// Package tui provides the Bubble Tea integration: the terminal game loop,
// input mapping, the cell-buffer drawing surface, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg carries the wall time of a frame.
type TickMsg time.Time

// frameInterval is the delay between frames at rate frames per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame. The game measures real elapsed time,
// so a late tick only makes the next step longer.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
