package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the visual styles for the garden screen.
type Styles struct {
	Counter  lipgloss.Style
	Status   lipgloss.Style
	Reveal   lipgloss.Style
	Prompt   lipgloss.Style
	Button   lipgloss.Style
	Caption  lipgloss.Style
	Flower   lipgloss.Style
	Wilt     lipgloss.Style
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the default mint-on-dark theme.
func DefaultStyles() Styles {
	mint := lipgloss.Color("79")
	return Styles{
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Align(lipgloss.Center),
		Reveal: lipgloss.NewStyle().Bold(true).Foreground(mint),
		Prompt: lipgloss.NewStyle().Foreground(mint),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(mint).
			Padding(0, 2),
		Caption:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Flower:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Wilt:     lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(mint),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(mint),
	}
}

// center centers a block within width; blocks wider than width are left as is.
func center(width int, block string) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// spread places left and right blocks at the edges of width.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
