package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordgarden/internal/storage"
)

// History layout constants
const (
	maxHistoryRounds = 50 // Rounds loaded for the server-wide view
	historyChrome    = 7  // Lines used by title, summary, and help
	minTableHeight   = 3
)

// HistoryModel shows journaled rounds in a table.
type HistoryModel struct {
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	styles     Styles
	rounds     []storage.RoundRecord
	summary    string
	serverWide bool
	width      int
	height     int
}

// NewHistoryModel creates a history view over rounds.
// summary is shown under the title.
func NewHistoryModel(rounds []storage.RoundRecord, summary string, serverWide bool, width, height int) HistoryModel {
	styles := DefaultStyles()

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: 12},
		{Title: "Result", Width: 8},
		{Title: "Guesses", Width: 8},
		{Title: "Misses", Width: 7},
		{Title: "Time", Width: 8},
	}
	if serverWide {
		columns = slices.Insert(columns, 1, table.Column{Title: "Player", Width: 12})
	}

	rows := make([]table.Row, 0, len(rounds))
	for i, r := range rounds {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			r.Word,
			r.Outcome,
			fmt.Sprintf("%d", r.Guesses),
			fmt.Sprintf("%d", r.Misses),
			r.CreatedAt.Format("15:04:05"),
		}
		if serverWide {
			row = slices.Insert(row, 1, r.Player)
		}
		rows = append(rows, row)
	}

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = styles.Selected

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(tableStyles),
	)

	h := HistoryModel{
		table:      t,
		help:       help.New(),
		keys:       DefaultHistoryKeyMap(),
		styles:     styles,
		rounds:     rounds,
		summary:    summary,
		serverWide: serverWide,
	}
	return h.SetSize(width, height)
}

// SetSize fits the table to the terminal.
func (h HistoryModel) SetSize(width, height int) HistoryModel {
	h.width = width
	h.height = height
	h.table.SetHeight(max(height-historyChrome, minTableHeight))
	h.help.Width = width
	return h
}

// Update scrolls the table.
func (h HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View renders the history screen.
func (h HistoryModel) View() string {
	var b strings.Builder

	title := "Rounds This Session"
	if h.serverWide {
		title = "Recent Rounds"
	}
	b.WriteString(h.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(h.styles.Subtle.Render(h.summary))
	b.WriteString("\n\n")

	if len(h.rounds) == 0 {
		b.WriteString("No rounds finished yet.\n")
	} else {
		b.WriteString(h.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(h.help.View(h.keys))
	return b.String()
}

// summarizeRounds counts wins and losses among rounds.
func summarizeRounds(rounds []storage.RoundRecord) string {
	won := 0
	for _, r := range rounds {
		if r.Outcome == "won" {
			won++
		}
	}
	return fmt.Sprintf("%d rounds, %d won, %d lost", len(rounds), won, len(rounds)-won)
}

// formatSummary renders a journal summary for one session.
func formatSummary(s storage.SessionSummary) string {
	return fmt.Sprintf("%d rounds, %d won, %d lost, %d guesses", s.Rounds, s.Won, s.Lost, s.Guesses)
}
