package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("86")  // cyan
	ColorAccent  = lipgloss.Color("212") // pink
	ColorSuccess = lipgloss.Color("78")  // green
	ColorDanger  = lipgloss.Color("203") // red
	ColorMuted   = lipgloss.Color("241") // gray
	ColorBorder  = lipgloss.Color("238")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	ParameterLabelStyle = lipgloss.NewStyle().Bold(true)
	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	VerdictStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)
