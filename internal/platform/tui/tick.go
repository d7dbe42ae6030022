// Package tui provides the Bubble Tea integration for the screensaver.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified frame rate.
func tickCmd(fps float64) tea.Cmd {
	if fps <= 0 {
		fps = 75
	}
	interval := time.Duration(float64(time.Second) / fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimeoutMsg is sent once when the configured session timeout elapses.
type TimeoutMsg struct{}

// timeoutCmd returns a command that fires a TimeoutMsg after d.
func timeoutCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimeoutMsg{}
	})
}
