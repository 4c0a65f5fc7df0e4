// Package tui provides the Bubble Tea integration for the memory game.
// It handles the terminal UI loop, keyboard and mouse mapping, and the HUD.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240
	// A finished round shows a static overlay and only waits for R or Q.
	idleTickRate = 10
)

// TickMsg triggers one game Step.
type TickMsg struct {
	At time.Time
}

// tickRate returns the rate for the tick following a Step that left the game
// in state. Out of range rates fall back to the default or the cap.
func tickRate(rate int, state core.GameState) int {
	switch {
	case rate <= 0:
		rate = defaultTickRate
	case rate > maxTickRate:
		rate = maxTickRate
	}
	if state.GameOver {
		rate = min(rate, idleTickRate)
	}
	return rate
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int, state core.GameState) tea.Cmd {
	interval := time.Second / time.Duration(tickRate(rate, state))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}
