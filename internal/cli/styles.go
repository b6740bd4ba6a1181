package cli

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	panel  lipgloss.Color
	border lipgloss.Color
	lap    lipgloss.Color
	reset  lipgloss.Color
}

var (
	darkPalette = palette{
		accent: lipgloss.Color("75"),
		text:   lipgloss.Color("252"),
		muted:  lipgloss.Color("245"),
		panel:  lipgloss.Color("236"),
		border: lipgloss.Color("33"),
		lap:    lipgloss.Color("42"),
		reset:  lipgloss.Color("203"),
	}

	lightPalette = palette{
		accent: lipgloss.Color("26"),
		text:   lipgloss.Color("236"),
		muted:  lipgloss.Color("242"),
		panel:  lipgloss.Color("255"),
		border: lipgloss.Color("250"),
		lap:    lipgloss.Color("28"),
		reset:  lipgloss.Color("160"),
	}
)

type styles struct {
	badge     lipgloss.Style
	clock     lipgloss.Style
	date      lipgloss.Style
	panel     lipgloss.Style
	stopwatch lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	lapBox    lipgloss.Style
	lapLabel  lipgloss.Style
	lapTime   lipgloss.Style
	lapMore   lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		badge: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.panel).
			Padding(0, 1),
		clock: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			MarginBottom(1),
		date: lipgloss.NewStyle().
			Foreground(p.muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 4).
			Align(lipgloss.Center),
		stopwatch: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		running: lipgloss.NewStyle().Foreground(p.lap),
		paused:  lipgloss.NewStyle().Foreground(p.reset),
		lapBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.border).
			MarginTop(1),
		lapLabel: lipgloss.NewStyle().Foreground(p.muted).Width(10),
		lapTime:  lipgloss.NewStyle().Foreground(p.text),
		lapMore:  lipgloss.NewStyle().Foreground(p.muted).Italic(true),
	}
}
