package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tickr/internal/clock"
	"github.com/inovacc/tickr/internal/model"
	"github.com/inovacc/tickr/internal/stopwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 0, 7, 9, 0, time.UTC)

func newTestModel(t *testing.T) ClockModel {
	t.Helper()

	return NewClockModel(Options{
		Config: model.DefaultConfig(),
		Clock:  clock.Func(func() time.Time { return fixedNow }),
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m ClockModel, msg tea.Msg) (ClockModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	cm, ok := next.(ClockModel)
	require.True(t, ok)

	return cm, cmd
}

// run executes a tick command and feeds the result back, n times.
func run(t *testing.T, m ClockModel, cmd tea.Cmd, n int) (ClockModel, tea.Cmd) {
	t.Helper()

	for range n {
		require.NotNil(t, cmd, "schedule should keep re-arming")
		m, cmd = update(t, m, cmd())
	}

	return m, cmd
}

func TestNewClockModelDefaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, DisplayMode{Is24Hour: false, Dark: true}, m.Mode())
	assert.Equal(t, fixedNow, m.Now())
	assert.Zero(t, m.Stopwatch().Elapsed())
	assert.False(t, m.Stopwatch().Running())
	assert.True(t, m.clockTick.Active())
	assert.False(t, m.swTick.Active())
}

func TestNewClockModelFromConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Is24Hour = true
	cfg.Theme = model.ThemeLight

	m := NewClockModel(Options{Config: cfg})

	assert.Equal(t, DisplayMode{Is24Hour: true, Dark: false}, m.Mode())
}

func TestClockTickRepublishesTime(t *testing.T) {
	now := fixedNow
	m := NewClockModel(Options{
		Config: model.DefaultConfig(),
		Clock:  clock.Func(func() time.Time { return now }),
	})

	now = now.Add(time.Second)

	msg := clock.TickMsg{ID: m.clockTick.ID(), Gen: m.clockTick.Generation(), Time: now}
	m, cmd := update(t, m, msg)

	assert.Equal(t, now, m.Now())
	assert.NotNil(t, cmd, "clock schedule re-arms while mounted")
}

func TestQuitCancelsSchedules(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('s'))
	require.True(t, m.swTick.Active())

	pendingClock := clock.TickMsg{ID: m.clockTick.ID(), Gen: m.clockTick.Generation()}
	pendingSW := clock.TickMsg{ID: m.swTick.ID(), Gen: m.swTick.Generation()}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.False(t, m.clockTick.Active())
	assert.False(t, m.swTick.Active())

	m, cmd = update(t, m, pendingClock)
	assert.Nil(t, cmd, "no clock tick may be re-armed after teardown")
	m, cmd = update(t, m, pendingSW)
	assert.Nil(t, cmd, "no stopwatch tick may be re-armed after teardown")
	assert.Empty(t, m.View())
}

func TestStartThenTicksAdvanceByTen(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('s'))
	require.NotNil(t, cmd)
	assert.True(t, m.Stopwatch().Running())

	m, _ = run(t, m, cmd, 5)

	assert.Equal(t, int64(5*stopwatch.TickMs), m.Stopwatch().Elapsed())
}

func TestSpaceTogglesRunning(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.NotNil(t, cmd)
	assert.True(t, m.Stopwatch().Running())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.False(t, m.Stopwatch().Running())
}

func TestPauseDropsInFlightTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('s'))
	m, cmd = run(t, m, cmd, 2)
	inFlight := cmd()

	m, _ = update(t, m, runeKey('s'))
	require.False(t, m.Stopwatch().Running())

	m, next := update(t, m, inFlight)
	assert.Nil(t, next)
	assert.Equal(t, int64(20), m.Stopwatch().Elapsed(), "elapsed is frozen while paused")
}

func TestRestartDoesNotDoubleSchedule(t *testing.T) {
	m := newTestModel(t)

	m, first := update(t, m, runeKey('s'))
	stale := first()

	m, _ = update(t, m, runeKey('s'))
	m, second := update(t, m, runeKey('s'))
	require.True(t, m.Stopwatch().Running())

	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd, "tick from the previous run must not start a second chain")
	assert.Zero(t, m.Stopwatch().Elapsed())

	m, _ = run(t, m, second, 3)
	assert.Equal(t, int64(30), m.Stopwatch().Elapsed())
}

func TestLapWhilePausedIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('l'))

	assert.Empty(t, m.Stopwatch().Laps())
	assert.NotContains(t, m.View(), "Lap")
}

func TestLapsRenderMostRecentFirst(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('s'))
	for range 3 {
		m, cmd = run(t, m, cmd, 2)
		m, _ = update(t, m, runeKey('l'))
	}

	assert.Equal(t, []int64{20, 40, 60}, m.Stopwatch().Laps())

	view := m.View()
	lap3 := strings.Index(view, "Lap 3")
	lap2 := strings.Index(view, "Lap 2")
	lap1 := strings.Index(view, "Lap 1")

	require.NotEqual(t, -1, lap3)
	require.NotEqual(t, -1, lap2)
	require.NotEqual(t, -1, lap1)
	assert.Less(t, lap3, lap2)
	assert.Less(t, lap2, lap1)
	assert.Contains(t, view, "00:00.06")
}

func TestLapListIsCapped(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('s'))
	m, _ = run(t, m, cmd, 1)

	for range defaultLapRows + 3 {
		m, _ = update(t, m, runeKey('l'))
	}

	view := m.View()
	assert.Contains(t, view, "Lap 11")
	assert.NotContains(t, view, "Lap 3")
	assert.Contains(t, view, "+3 more")
}

func TestResetFromRunning(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('s'))
	m, cmd = run(t, m, cmd, 3)
	m, _ = update(t, m, runeKey('l'))
	inFlight := cmd()

	m, _ = update(t, m, runeKey('r'))

	assert.Zero(t, m.Stopwatch().Elapsed())
	assert.Empty(t, m.Stopwatch().Laps())
	assert.False(t, m.Stopwatch().Running())
	assert.False(t, m.swTick.Active())

	m, next := update(t, m, inFlight)
	assert.Nil(t, next)
	assert.Zero(t, m.Stopwatch().Elapsed())
}

func TestTogglesAreInvolutions(t *testing.T) {
	m := newTestModel(t)
	start := m.Mode()

	m, _ = update(t, m, runeKey('h'))
	assert.True(t, m.Mode().Is24Hour)
	m, _ = update(t, m, runeKey('h'))
	assert.Equal(t, start, m.Mode())

	m, _ = update(t, m, runeKey('t'))
	assert.False(t, m.Mode().Dark)
	m, _ = update(t, m, runeKey('t'))
	assert.Equal(t, start, m.Mode())
}

func TestDisplayModeToggles(t *testing.T) {
	d := DisplayMode{}

	d.ToggleHourFormat()
	d.ToggleTheme()
	assert.Equal(t, DisplayMode{Is24Hour: true, Dark: true}, d)

	d.ToggleHourFormat()
	d.ToggleTheme()
	assert.Equal(t, DisplayMode{}, d)
}

func TestViewRendersClockAndDate(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "12:07:09 AM")
	assert.Contains(t, view, "Tuesday, March 5, 2024")
	assert.Contains(t, view, "00:00.00")
	assert.Contains(t, view, "12H")
	assert.Contains(t, view, "dark")

	m, _ = update(t, m, runeKey('h'))
	m, _ = update(t, m, runeKey('t'))

	view = m.View()
	assert.Contains(t, view, "0:07:09")
	assert.NotContains(t, view, "AM")
	assert.Contains(t, view, "24H")
	assert.Contains(t, view, "light")
}

func TestViewUsesConfiguredLocale(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Locale = "fr"

	m := NewClockModel(Options{
		Config: cfg,
		Clock:  clock.Func(func() time.Time { return fixedNow }),
	})

	assert.Contains(t, m.View(), "mars")
}

func TestWindowSizeSetsLayout(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 20, m.lapRowLimit())
	assert.Contains(t, m.View(), "12:07:09 AM")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "theme")
}
