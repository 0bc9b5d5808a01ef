package theme

import "github.com/charmbracelet/lipgloss"

// Panel styles
var (
	FlashPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorFlash).
			Background(ColorFlash).
			Foreground(lipgloss.Color("0")).
			Padding(1, 3)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 3)
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Position row styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NextValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// Clock styles
var (
	ClockBoxStyle = lipgloss.NewStyle().
			Background(ColorPanel).
			Padding(1, 4).
			MarginTop(1).
			MarginBottom(1).
			Align(lipgloss.Center)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(ColorPanel)

	TotalTimeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(ColorPanel)
)

// Status styles
var (
	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPaused)

	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRunning)
)

// Footer styles
var (
	PlanSummaryStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)
