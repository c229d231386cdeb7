package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorWarning  = "214" // Orange for warnings and unsaved state
	ColorDanger   = "196" // Red for destructive actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255"
	ColorBrand    = "205" // Pink used in the title bar
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBrand)).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive)).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 1).
			Bold(true)

	DirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive))

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	SelectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)
)

// StatusStyle returns the foreground used for a status message
func StatusStyle(t StatusType) lipgloss.Style {
	color := ColorNormal
	switch t {
	case StatusTypeSuccess:
		color = ColorSuccess
	case StatusTypeWarning:
		color = ColorWarning
	case StatusTypeError:
		color = ColorDanger
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// formatConfirmOptions renders the y/n hint, coloring the risky answer red
func formatConfirmOptions(destructive bool) string {
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true)
	safe := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	if destructive {
		return "[" + danger.Render("y") + "/" + safe.Render("n") + "]"
	}
	return "[" + safe.Render("y") + "/" + danger.Render("n") + "]"
}
