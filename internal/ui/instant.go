package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Layout is how instants are printed unless the user asks for another one.
const Layout = "Mon 2006-01-02 15:04:05 MST"

var (
	Instant = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Divider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")

	past   = lipgloss.NewStyle().Foreground(Secondary)
	future = lipgloss.NewStyle().Foreground(Blue)
	soon   = lipgloss.NewStyle().Foreground(Orange)

	Failure = lipgloss.NewStyle().Bold(true).Foreground(Red)
)

// RenderInstant prints t in layout followed by how far it is from now.
func RenderInstant(t, now time.Time, layout string) string {
	if layout == "" {
		layout = Layout
	}
	return Instant.Render(t.Format(layout)) + Divider + relativeStyle(t, now).Render(Relative(t, now))
}

func relativeStyle(t, now time.Time) lipgloss.Style {
	switch d := t.Sub(now); {
	case d < 0:
		return past
	case d <= 48*time.Hour:
		return soon
	default:
		return future
	}
}

// Relative describes the distance between t and now in the largest whole
// unit, e.g. "in 3 days" or "2 hours ago".
func Relative(t, now time.Time) string {
	d := t.Sub(now)
	ago := d < 0
	if ago {
		d = -d
	}
	if d < time.Minute {
		return "now"
	}

	var n int
	var unit string
	switch days := int(d.Hours()) / 24; {
	case d < time.Hour:
		n, unit = int(d.Minutes()), "minute"
	case d < 24*time.Hour:
		n, unit = int(d.Hours()), "hour"
	case days < 14:
		n, unit = days, "day"
	// max 2 months
	case days <= 62:
		n, unit = days/7, "week"
	case days < 365:
		n, unit = days/31, "month"
	default:
		n, unit = days/365, "year"
	}
	s := strconv.Itoa(n) + " " + unit
	if n > 1 {
		s += "s"
	}
	if ago {
		return s + " ago"
	}
	return "in " + s
}
