package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/gymtimer/internal/config"
	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/services"
	"github.com/renato0307/gymtimer/internal/theme"
)

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 60
	columnGap            = 4
)

// Model is the timer screen
type Model struct {
	devMode  bool
	flash    bool
	help     help.Model
	height   int
	keys     KeyMap
	progress progress.Model
	snapshot domain.Snapshot
	timer    *services.TimerService
	width    int
}

// NewModel creates the timer screen for timer. Pass nil keysConfig to use
// the default key bindings.
func NewModel(keysConfig config.KeyBindingsConfig, timer *services.TimerService, devMode bool) *Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKeyStyle
	h.Styles.ShortDesc = theme.HelpDescStyle
	h.Styles.FullKey = theme.HelpKeyStyle
	h.Styles.FullDesc = theme.HelpDescStyle

	p := progress.New(
		progress.WithGradient(theme.ColorProgressStart, theme.ColorProgressEnd),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultProgressWidth),
	)

	return &Model{
		devMode:  devMode,
		help:     h,
		keys:     NewKeyMap(keysConfig),
		progress: p,
		snapshot: timer.Snapshot(),
		timer:    timer,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-16, 10), maxProgressWidth)
		return m, nil

	case StateChangedMsg:
		// Messages can trail the read-back done after a key press
		if m.snapshot.IsNewerThan(msg.Snapshot) {
			return m, nil
		}
		m.snapshot = msg.Snapshot
		return m, nil

	case FlashMsg:
		m.flash = msg.On
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		logging.Logger.Debug("Quit requested", "key", msg.String())
		m.timer.Pause()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.timer.Status() == domain.StatusRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}

	case key.Matches(msg, m.keys.NextSet):
		m.timer.NextSet()

	case key.Matches(msg, m.keys.Restart):
		m.timer.Restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		return m, nil
	}

	// Read back now; the OnChange message for this command arrives later
	m.snapshot = m.timer.Snapshot()
	return m, nil
}

func (m *Model) View() string {
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode))
	b.WriteString("\n")
	b.WriteString(m.renderPositions(snap))
	b.WriteString("\n")
	b.WriteString(m.renderClock(snap))
	b.WriteString("\n")
	b.WriteString(m.renderProgress(snap))
	b.WriteString("\n\n")
	b.WriteString(renderStatus(snap))
	b.WriteString("\n")
	b.WriteString(renderPlanSummary(snap))

	panelStyle := theme.PanelStyle
	if m.flash {
		panelStyle = theme.FlashPanelStyle
	}
	panel := panelStyle.Render(b.String())

	view := lipgloss.JoinVertical(lipgloss.Left, panel, m.help.View(m.keys))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m *Model) renderPositions(snap domain.Snapshot) string {
	column := func(label, value string, valueStyle lipgloss.Style) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.LabelStyle.Render(label),
			valueStyle.Render(value),
		)
	}
	gap := strings.Repeat(" ", columnGap)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		column("Current", snap.Current.String(), theme.ValueStyle),
		gap,
		column("Next", snap.Next.String(), theme.NextValueStyle),
		gap,
		column("Cycle", fmt.Sprintf("%d", snap.CurrentCycle()), theme.ValueStyle),
	)
}

func (m *Model) renderClock(snap domain.Snapshot) string {
	clock := theme.ClockStyle.Render(FormatClock(snap.ExerciseElapsedSeconds))
	total := theme.TotalTimeStyle.Render("Total time: " + FormatClock(snap.TotalElapsedSeconds))
	return theme.ClockBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, clock, total))
}

func (m *Model) renderProgress(snap domain.Snapshot) string {
	label := theme.LabelStyle.Render(" next set in " + FormatClock(snap.SecondsUntilInterval()))
	return m.progress.ViewAs(snap.IntervalProgress()) + label
}

func renderStatus(snap domain.Snapshot) string {
	if snap.IsRunning() {
		return theme.RunningStyle.Render(domain.SymbolRunning + " running")
	}
	return theme.PausedStyle.Render(domain.SymbolPaused + " paused")
}

func renderPlanSummary(snap domain.Snapshot) string {
	return theme.PlanSummaryStyle.Render(fmt.Sprintf(
		"Plan: %s. Next set every %s. Pause keeps your place.",
		snap.Plan, FormatClock(snap.IntervalSeconds),
	))
}
