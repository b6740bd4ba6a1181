// Package stopwatch implements the start/pause/lap/reset state machine.
//
// The stopwatch advances by a fixed TickMs per tick instead of measuring
// wall-clock time between ticks, so a late tick is not compensated for.
package stopwatch

import "time"

// TickMs is the increment applied on every tick while running.
const TickMs = 10

// Interval is the tick period matching TickMs.
const Interval = TickMs * time.Millisecond

// State is either Paused or Running.
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// LapRow is a lap as displayed: most recent first, numbered from the total.
type LapRow struct {
	Number    int
	ElapsedMs int64
}

// Stopwatch holds elapsed time and laps. The zero value is paused at 0.
type Stopwatch struct {
	elapsedMs int64
	state     State
	laps      []int64
}

// New returns a paused stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Start moves Paused to Running and reports whether the state changed.
func (s *Stopwatch) Start() bool {
	if s.state == Running {
		return false
	}

	s.state = Running

	return true
}

// Pause moves Running to Paused and reports whether the state changed.
func (s *Stopwatch) Pause() bool {
	if s.state == Paused {
		return false
	}

	s.state = Paused

	return true
}

// Toggle flips between Running and Paused and returns the new state.
func (s *Stopwatch) Toggle() State {
	if s.state == Running {
		s.Pause()
	} else {
		s.Start()
	}

	return s.state
}

// Tick advances elapsed time by TickMs while running.
func (s *Stopwatch) Tick() {
	if s.state != Running {
		return
	}

	s.elapsedMs += TickMs
}

// Lap records the current elapsed time. Ignored while paused.
func (s *Stopwatch) Lap() bool {
	if s.state != Running {
		return false
	}

	s.laps = append(s.laps, s.elapsedMs)

	return true
}

// Reset zeroes elapsed time, drops all laps and pauses.
func (s *Stopwatch) Reset() {
	s.elapsedMs = 0
	s.laps = nil
	s.state = Paused
}

// Elapsed returns the elapsed milliseconds.
func (s *Stopwatch) Elapsed() int64 {
	return s.elapsedMs
}

// State returns the current state.
func (s *Stopwatch) State() State {
	return s.state
}

// Running reports whether the stopwatch is running.
func (s *Stopwatch) Running() bool {
	return s.state == Running
}

// LapCount returns the number of recorded laps.
func (s *Stopwatch) LapCount() int {
	return len(s.laps)
}

// Laps returns a copy of the laps in the order they were recorded.
func (s *Stopwatch) Laps() []int64 {
	out := make([]int64, len(s.laps))
	copy(out, s.laps)

	return out
}

// LapRows returns laps most recent first, labelled total-index.
func (s *Stopwatch) LapRows() []LapRow {
	n := len(s.laps)
	rows := make([]LapRow, n)

	for i := range rows {
		rows[i] = LapRow{Number: n - i, ElapsedMs: s.laps[n-1-i]}
	}

	return rows
}
