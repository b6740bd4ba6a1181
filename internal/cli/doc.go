// Package cli provides the terminal user interface for tickr.
//
// The package uses [Bubbletea] for the event loop and [Lipgloss] for
// styling. [ClockModel] follows the Model-View-Update architecture: every
// timer tick and key press arrives as a message on the single Bubble Tea
// goroutine, so state is only ever mutated from one place.
//
// # Schedules
//
// Two recurring schedules feed the model:
//   - the clock schedule (once per second) is opened when the model is
//     created and closed on quit
//   - the stopwatch schedule (every 10ms) is opened on start and closed on
//     pause or reset
//
// Ticks from a closed schedule are dropped and never re-armed.
//
// # Keys
//
//	space, s   start/pause the stopwatch
//	l          record a lap (running only)
//	r          reset the stopwatch
//	h          toggle 12/24-hour clock
//	t          toggle dark/light theme
//	?          full help
//	q, ctrl+c  quit
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
