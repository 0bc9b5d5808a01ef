package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const ColorPrimary Color = "99" // Purple - title

// Timer state colors
const (
	ColorPaused  Color = "3" // Yellow - paused
	ColorRunning Color = "2" // Green - running
)

// UI semantic colors
const (
	ColorBorder    Color = "255" // White - panel border
	ColorFlash     Color = "214" // Orange - interval flash
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorPanel     Color = "235" // Near black - clock background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Progress bar gradient
const (
	ColorProgressStart = "#5A56E0"
	ColorProgressEnd   = "#EE6FF8"
)
