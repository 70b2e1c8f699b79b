package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// tickInterval is how often the clock redraws and alarms are checked.
const tickInterval = time.Second

// tickMsg triggers one alarm check and redraw.
type tickMsg time.Time

// Model is the bubbletea model of the alarm clock screen.
type Model struct {
	// ctx carries the logger for scheduler calls.
	ctx context.Context //nolint:containedctx // bubbletea models cannot receive a context per call.
	// scheduler owns the alarms and the notifier boundary.
	scheduler *scheduler.Scheduler

	// now is the last clock reading in seconds since midnight.
	now int
	// alarms is the snapshot rendered in the list.
	alarms []*alarm.Alarm
	// next is the upcoming alarm, nil when there is none.
	next *alarm.Alarm
	// left is the time until next rings.
	left time.Duration
	// ringing is the subset of alarms currently ringing.
	ringing []*alarm.Alarm
	// cursor is the index of the selected alarm.
	cursor int

	// input collects the HH:MM text while adding.
	input textinput.Model
	// adding is true while the add prompt is open.
	adding bool

	// status is the last feedback line.
	status string
	// statusIsError renders status as an error.
	statusIsError bool

	// styles holds the view styles.
	styles styles
}

// NewModel returns a model bound to the scheduler.
func NewModel(ctx context.Context, s *scheduler.Scheduler) Model {
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.CharLimit = len("HH:MM")
	input.Prompt = "New alarm: "

	m := Model{
		ctx:       ctx,
		scheduler: s,
		input:     input,
		styles:    defaultStyles(),
	}

	return m.refresh()
}

// Init implements tea.Model. Starts the tick loop right away.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(), tick()

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKeys(msg)
		}

		return m.handleListKeys(msg)
	}

	return m, nil
}

// handleTick checks alarms and refreshes the snapshot.
func (m Model) handleTick() Model {
	fired := m.scheduler.Tick(m.ctx)
	if len(fired) > 0 {
		names := make([]string, 0, len(fired))
		for _, a := range fired {
			names = append(names, a.String())
		}

		m.setStatus(fmt.Sprintf("Ringing: %s (press d to dismiss)", strings.Join(names, ", ")), false)
	}

	return m.refresh()
}

// handleListKeys handles navigation, cancellation and quitting.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a", "+":
		m.adding = true
		m.input.Reset()
		cmd := m.input.Focus()

		return m, cmd

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.alarms)-1 {
			m.cursor++
		}

	case "d", "x", "delete", "backspace":
		m = m.cancelSelected()
	}

	return m, nil
}

// handleAddKeys handles the add prompt.
func (m Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.closePrompt()

		return m, nil

	case tea.KeyEnter:
		m = m.submit()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit parses the prompt and adds the alarm. Invalid input keeps the
// prompt open and shows the error.
func (m Model) submit() Model {
	hours, minutes, err := alarm.ParseTime(m.input.Value())
	if err == nil {
		var added *alarm.Alarm

		added, err = m.scheduler.Add(m.ctx, hours, minutes)
		if err == nil {
			m.closePrompt()
			m.setStatus("Added "+added.String(), false)

			m = m.refresh()
			m.selectID(added)

			return m
		}
	}

	m.setStatus(err.Error(), true)

	return m
}

// cancelSelected removes the highlighted alarm, silencing it if it rings.
func (m Model) cancelSelected() Model {
	if m.cursor < 0 || m.cursor >= len(m.alarms) {
		return m
	}

	selected := m.alarms[m.cursor]

	removed, ok := m.scheduler.Cancel(m.ctx, selected.ID)

	switch {
	case !ok:
		m.setStatus("Alarm "+selected.String()+" was already removed", false)
	case removed.IsRinging:
		m.setStatus("Dismissed "+removed.String(), false)
	default:
		m.setStatus("Removed "+removed.String(), false)
	}

	return m.refresh()
}

// refresh reloads the snapshot from the scheduler and clamps the cursor.
func (m Model) refresh() Model {
	m.now = m.scheduler.Now()
	m.alarms = m.scheduler.Manager().Alarms()
	m.ringing = m.scheduler.Manager().Ringing()

	m.next, m.left, _ = m.scheduler.Next()

	if m.cursor >= len(m.alarms) {
		m.cursor = len(m.alarms) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}

	return m
}

// selectID moves the cursor onto the alarm with a's ID.
func (m *Model) selectID(a *alarm.Alarm) {
	for i, candidate := range m.alarms {
		if candidate.ID == a.ID {
			m.cursor = i

			return
		}
	}
}

// closePrompt hides the add prompt.
func (m *Model) closePrompt() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

// setStatus replaces the feedback line.
func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
}

// tick schedules the next tickMsg.
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
