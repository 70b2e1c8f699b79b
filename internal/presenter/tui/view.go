package tui

import (
	"fmt"
	"strings"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// helpLine lists the key bindings in list mode.
const helpLine = "a add · d cancel/dismiss · ↑/↓ select · q quit"

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.clock.Render(formatSeconds(m.now)))
	b.WriteString("\n\n")
	b.WriteString(m.nextLine())
	b.WriteString("\n\n")
	b.WriteString(m.styles.heading.Render("Alarms"))
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.faint.Render("enter confirm · esc cancel"))
	} else {
		b.WriteString(m.styles.faint.Render(helpLine))
	}

	if len(m.ringing) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ringing.Render(fmt.Sprintf("%d ringing", len(m.ringing))))
	}

	if m.status != "" {
		b.WriteString("\n")

		if m.statusIsError {
			b.WriteString(m.styles.errText.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
	}

	return m.styles.frame.Render(b.String()) + "\n"
}

// nextLine describes the upcoming alarm.
func (m Model) nextLine() string {
	if m.next == nil {
		return m.styles.faint.Render("No upcoming alarms")
	}

	return fmt.Sprintf("Next alarm %s in %s", m.next.String(), alarm.FormatTimeLeft(m.left))
}

// listView renders one line per alarm.
func (m Model) listView() string {
	if len(m.alarms) == 0 {
		return m.styles.faint.Render("  none")
	}

	lines := make([]string, 0, len(m.alarms))

	for i, a := range m.alarms {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		var state string

		switch left := a.TimeLeft(m.now); {
		case a.IsRinging:
			state = m.styles.ringing.Render("RINGING")
		case left > 0:
			state = "in " + alarm.FormatTimeLeft(left)
		default:
			state = m.styles.faint.Render("passed")
		}

		line := fmt.Sprintf("%s%s  %s", marker, a.String(), state)
		if i == m.cursor {
			line = m.styles.selected.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// formatSeconds renders seconds since midnight as HH:MM:SS.
func formatSeconds(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d",
		seconds/alarm.SecondsPerHour,
		(seconds%alarm.SecondsPerHour)/alarm.SecondsPerMinute,
		seconds%alarm.SecondsPerMinute)
}
