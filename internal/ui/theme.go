// Package ui holds the CLI styling: a few reusable lipgloss styles and
// helpers for the expedition status output.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconSummit   = "🏔️"
	IconFlag     = "🚩"
	IconBoot     = "🥾"
	IconHeart    = "❤️"
	IconDrop     = "💧"
	IconGear     = "🧗"
	IconWeather  = "🌤️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconTrophy   = "🏆"
	IconSparkle  = "✨"
	IconCompass  = "🧭"
	IconTip      = "💡"
)

var (
	cPrimary = lipgloss.Color("33")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Meter renders a 0-1 level as a ten-segment bar, colored by how low it is.
func Meter(level float64) string {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	filled := int(level*10 + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case level < 0.3:
		return Bad.Render(bar)
	case level < 0.6:
		return Warn.Render(bar)
	default:
		return Good.Render(bar)
	}
}
