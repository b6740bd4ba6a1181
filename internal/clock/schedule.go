package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is delivered by a Schedule once per interval.
type TickMsg struct {
	ID   int
	Gen  int
	Time time.Time
}

// Schedule is a recurring tick bound to the Bubble Tea event loop.
//
// Every Start opens a new generation and Stop closes it. A TickMsg carries
// the generation it was armed under; Accept rejects anything from a closed
// generation and the caller does not re-arm it, so a stopped schedule
// stops producing ticks after at most one stale delivery.
type Schedule struct {
	id       int
	gen      int
	interval time.Duration
	active   bool
}

// NewSchedule returns an inactive schedule firing every interval.
func NewSchedule(interval time.Duration) Schedule {
	return Schedule{id: nextID(), interval: interval}
}

// ID identifies the schedule in TickMsg.
func (s Schedule) ID() int {
	return s.id
}

// Generation returns the current generation; it changes on every Start and Stop.
func (s Schedule) Generation() int {
	return s.gen
}

// Interval returns the tick period.
func (s Schedule) Interval() time.Duration {
	return s.interval
}

// Active reports whether the schedule is running.
func (s Schedule) Active() bool {
	return s.active
}

// Start opens a new generation and arms its first tick. Calling Start on an
// active schedule supersedes the pending tick rather than adding a second one.
func (s *Schedule) Start() tea.Cmd {
	s.gen++
	s.active = true

	return s.arm()
}

// Stop closes the current generation. Pending ticks will be rejected.
func (s *Schedule) Stop() {
	if !s.active {
		return
	}

	s.gen++
	s.active = false
}

// Accept reports whether msg belongs to the live generation of s.
func (s Schedule) Accept(msg TickMsg) bool {
	return s.active && msg.ID == s.id && msg.Gen == s.gen
}

// Next arms the following tick, or returns nil once stopped.
func (s Schedule) Next() tea.Cmd {
	if !s.active {
		return nil
	}

	return s.arm()
}

func (s Schedule) arm() tea.Cmd {
	id, gen := s.id, s.gen

	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}
