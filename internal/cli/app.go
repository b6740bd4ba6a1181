package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/tickr/internal/clock"
	"github.com/inovacc/tickr/internal/format"
	"github.com/inovacc/tickr/internal/model"
	"github.com/inovacc/tickr/internal/stopwatch"
)

const (
	// ClockInterval is how often the displayed time is refreshed.
	ClockInterval = 1000 * time.Millisecond

	defaultLapRows = 8
)

// DisplayMode holds the two independent view preferences.
type DisplayMode struct {
	Is24Hour bool
	Dark     bool
}

// ToggleHourFormat switches between 12-hour and 24-hour display.
func (d *DisplayMode) ToggleHourFormat() {
	d.Is24Hour = !d.Is24Hour
}

// ToggleTheme switches between dark and light.
func (d *DisplayMode) ToggleTheme() {
	d.Dark = !d.Dark
}

// Options configures NewClockModel.
type Options struct {
	Config model.Config
	Clock  clock.Clock
	Logger *slog.Logger
}

// ClockModel is the clock and stopwatch view.
type ClockModel struct {
	source    clock.Source
	stopwatch *stopwatch.Stopwatch
	mode      DisplayMode
	locale    string

	clockTick clock.Schedule
	swTick    clock.Schedule

	keys   keyMap
	help   help.Model
	styles styles
	width  int
	height int

	logger   *slog.Logger
	quitting bool
}

// NewClockModel mounts the view: the time is published and the clock
// schedule is opened; Init arms its first tick.
func NewClockModel(opts Options) ClockModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := ClockModel{
		source:    clock.NewSource(opts.Clock),
		stopwatch: stopwatch.New(),
		mode: DisplayMode{
			Is24Hour: opts.Config.Is24Hour,
			Dark:     opts.Config.Theme != model.ThemeLight,
		},
		locale:    opts.Config.Locale,
		clockTick: clock.NewSchedule(ClockInterval),
		swTick:    clock.NewSchedule(stopwatch.Interval),
		keys:      defaultKeyMap(),
		help:      help.New(),
		logger:    logger,
	}

	m.styles = newStyles(m.mode.Dark)
	m.clockTick.Start()

	return m
}

func (m ClockModel) Init() tea.Cmd {
	return m.clockTick.Next()
}

func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.TickMsg:
		return m.handleTick(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ClockModel) handleTick(msg clock.TickMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.clockTick.Accept(msg):
		m.source.Tick()

		return m, m.clockTick.Next()

	case m.swTick.Accept(msg):
		m.stopwatch.Tick()

		return m, m.swTick.Next()
	}

	m.logger.Debug("dropped stale tick", "schedule", msg.ID, "gen", msg.Gen)

	return m, nil
}

func (m ClockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmount()

		return m, tea.Quit

	case key.Matches(msg, m.keys.HourFormat):
		m.mode.ToggleHourFormat()
		m.logger.Debug("hour format toggled", "24h", m.mode.Is24Hour)

	case key.Matches(msg, m.keys.Theme):
		m.mode.ToggleTheme()
		m.styles = newStyles(m.mode.Dark)
		m.logger.Debug("theme toggled", "dark", m.mode.Dark)

	case key.Matches(msg, m.keys.StartPause):
		return m, m.toggleRunning()

	case key.Matches(msg, m.keys.Lap):
		if m.stopwatch.Lap() {
			m.logger.Info("lap recorded", "lap", m.stopwatch.LapCount(), "elapsed_ms", m.stopwatch.Elapsed())
		}

	case key.Matches(msg, m.keys.Reset):
		m.stopwatch.Reset()
		m.swTick.Stop()
		m.logger.Info("stopwatch reset")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// toggleRunning keeps the stopwatch schedule in lockstep with its state.
func (m *ClockModel) toggleRunning() tea.Cmd {
	if m.stopwatch.Toggle() == stopwatch.Running {
		m.logger.Info("stopwatch started", "elapsed_ms", m.stopwatch.Elapsed())

		return m.swTick.Start()
	}

	m.swTick.Stop()
	m.logger.Info("stopwatch paused", "elapsed_ms", m.stopwatch.Elapsed())

	return nil
}

func (m *ClockModel) unmount() {
	m.clockTick.Stop()
	m.swTick.Stop()
	m.quitting = true
}

func (m ClockModel) View() string {
	if m.quitting {
		return ""
	}

	now := m.source.Now()
	s := m.styles

	hourBadge := "12H"
	if m.mode.Is24Hour {
		hourBadge = "24H"
	}

	themeBadge := "☀ light"
	if m.mode.Dark {
		themeBadge = "☾ dark"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.badge.Render(hourBadge), " ", s.badge.Render(themeBadge))

	clockPanel := s.panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.clock.Render(format.Clock(now, m.mode.Is24Hour)),
		s.date.Render(format.DateIn(now, m.locale)),
	))

	state := s.paused.Render("⏸ paused")
	if m.stopwatch.Running() {
		state = s.running.Render("▶ running")
	}

	swParts := []string{
		s.stopwatch.Render(format.Stopwatch(m.stopwatch.Elapsed())),
		state,
	}

	if laps := m.renderLaps(); laps != "" {
		swParts = append(swParts, laps)
	}

	swPanel := s.panel.Render(lipgloss.JoinVertical(lipgloss.Center, swParts...))

	body := lipgloss.JoinVertical(lipgloss.Center, header, clockPanel, swPanel, m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}

	return body + "\n"
}

// renderLaps lists laps most recent first, or "" when there are none.
func (m ClockModel) renderLaps() string {
	rows := m.stopwatch.LapRows()
	if len(rows) == 0 {
		return ""
	}

	limit := m.lapRowLimit()
	shown := rows
	if len(shown) > limit {
		shown = shown[:limit]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, row := range shown {
		lines = append(lines, m.styles.lapLabel.Render(fmt.Sprintf("Lap %d", row.Number))+
			m.styles.lapTime.Render(format.Stopwatch(row.ElapsedMs)))
	}

	if hidden := len(rows) - len(shown); hidden > 0 {
		lines = append(lines, m.styles.lapMore.Render(fmt.Sprintf("+%d more", hidden)))
	}

	return m.styles.lapBox.Render(strings.Join(lines, "\n"))
}

// lapRowLimit fits the lap list under the fixed part of the layout.
func (m ClockModel) lapRowLimit() int {
	if m.height <= 0 {
		return defaultLapRows
	}

	const reserved = 20
	if free := m.height - reserved; free > 1 {
		return free
	}

	return 1
}

// Mode returns the current display preferences.
func (m ClockModel) Mode() DisplayMode {
	return m.mode
}

// Stopwatch exposes the stopwatch state for inspection.
func (m ClockModel) Stopwatch() *stopwatch.Stopwatch {
	return m.stopwatch
}

// Now returns the last published clock time.
func (m ClockModel) Now() time.Time {
	return m.source.Now()
}
