// Package theme holds the lipgloss styles shared by CLI output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Indigo = lipgloss.Color("#6366F1")
	Cyan   = lipgloss.Color("#06B6D4")
	Amber  = lipgloss.Color("#F59E0B")
	Green  = lipgloss.Color("#10B981")
	Red    = lipgloss.Color("#EF4444")
	Ink    = lipgloss.Color("#E2E8F0")
	Muted  = lipgloss.Color("#64748B")
	Frame  = lipgloss.Color("#475569")
)

// Headings and labels
var (
	Title       = lipgloss.NewStyle().Bold(true).Foreground(Indigo)
	Label       = lipgloss.NewStyle().Foreground(Muted)
	Hint        = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	Rule        = lipgloss.NewStyle().Foreground(Frame)
	Card        = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Frame).
			Padding(0, 1)
)

// Question rendering
var (
	Question = lipgloss.NewStyle().Bold(true).Foreground(Ink)
	Option   = lipgloss.NewStyle().Foreground(Ink)
	Blank    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(Amber)
)

// Outcomes
var (
	Correct   = lipgloss.NewStyle().Bold(true).Foreground(Green)
	Incorrect = lipgloss.NewStyle().Bold(true).Foreground(Red)
	Warning   = lipgloss.NewStyle().Foreground(Amber)
)
