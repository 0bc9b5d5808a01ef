package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/gymtimer/internal/theme"
)

// VersionInfo holds version information for display in the UI header.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Interval timer for guided gym workouts",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the screen title, with build details in dev mode
func renderHeader(devMode bool) string {
	title := theme.TitleStyle.Render("Gym Metronome")
	if !devMode {
		return title
	}

	commit := versionInfo.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	details := fmt.Sprintf(" %s | %s | %s", versionInfo.Version, commit, versionInfo.GoVersion)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, theme.VersionStyle.Render(details))
}
