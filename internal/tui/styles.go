package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// Colors defines the color palette for the menu.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Task status colors
	NotDone lipgloss.Color
	Done    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	NotDone: lipgloss.Color("#FDCB6E"), // Yellow
	Done:    lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the menu.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Items
	ItemNormal     lipgloss.Style
	ItemSelected   lipgloss.Style
	CursorSelected lipgloss.Style
	Muted          lipgloss.Style

	// Task status badges
	StatusNotDone lipgloss.Style
	StatusDone    lipgloss.Style

	// Summary
	Label lipgloss.Style
	Value lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputLabel lipgloss.Style

	// Status line
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the menu.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Underline(true).
			Padding(0, 2),

		ItemNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusNotDone: lipgloss.NewStyle().
			Foreground(Colors.NotDone),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(18),

		Value: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Width(14),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Footer: lipgloss.NewStyle().
			MarginTop(1),
	}
}

// StatusStyle returns the badge style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status.IsDone() {
		return s.StatusDone
	}
	return s.StatusNotDone
}
