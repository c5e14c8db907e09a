// Package tui provides the Bubble Tea front end for Word Garden.
// It renders a garden.Session, forwards sanitized guesses to it, and turns
// the cues it emits into sounds and timed image swaps.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// imageMsg swaps the displayed image once a delayed cue fires.
// Messages from an older generation are stale and ignored.
type imageMsg struct {
	key string
	gen int
}

// showImageAfter returns a command that delivers an imageMsg after d.
func showImageAfter(d time.Duration, key string, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return imageMsg{key: key, gen: gen}
	})
}
