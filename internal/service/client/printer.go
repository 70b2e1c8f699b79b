package client

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// printer renders daemon responses for humans.
type printer struct {
	// out receives the rendered text.
	out io.Writer
	// bold highlights headers.
	bold *color.Color
	// ringing highlights ringing alarms.
	ringing *color.Color
	// faint dims secondary information.
	faint *color.Color
}

// newPrinter returns a printer writing to out.
func newPrinter(out io.Writer) *printer {
	return &printer{
		out:     out,
		bold:    color.New(color.Bold),
		ringing: color.New(color.FgRed, color.Bold),
		faint:   color.New(color.Faint),
	}
}

func (p *printer) added(a *rpc.Alarm) {
	_, _ = fmt.Fprintf(p.out, "Alarm %s scheduled %s\n", p.bold.Sprint(a.GetTime()), p.faint.Sprint(a.GetID()))
}

func (p *printer) cancelled(id string, response *rpc.CancelAlarmResponse) {
	if !response.GetRemoved() {
		_, _ = fmt.Fprintf(p.out, "No alarm with id %s\n", id)

		return
	}

	a := response.GetAlarm()
	if a.GetIsRinging() {
		_, _ = fmt.Fprintf(p.out, "Alarm %s dismissed\n", p.bold.Sprint(a.GetTime()))

		return
	}

	_, _ = fmt.Fprintf(p.out, "Alarm %s removed\n", p.bold.Sprint(a.GetTime()))
}

// list renders the alarms as a table with a time-left column for future ones.
func (p *printer) list(response *rpc.ListAlarmsResponse) {
	alarms := response.GetAlarms()
	if len(alarms) == 0 {
		_, _ = fmt.Fprintln(p.out, "No alarms")

		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(p.bold.Sprint("TIME"), p.bold.Sprint("STATE"), p.bold.Sprint("LEFT"), p.bold.Sprint("ID"))

	for _, a := range alarms {
		state := "scheduled"
		if a.GetIsRinging() {
			state = p.ringing.Sprint("RINGING")
		}

		tbl.AddRow(a.GetTime(), state, timeLeft(a, int(response.NowSecond)), p.faint.Sprint(a.GetID()))
	}

	_, _ = fmt.Fprintln(p.out, tbl)
}

func (p *printer) next(response *rpc.NextAlarmResponse) {
	if !response.GetFound() {
		_, _ = fmt.Fprintln(p.out, "No upcoming alarms")

		return
	}

	_, _ = fmt.Fprintf(p.out, "Next alarm %s in %s\n",
		p.bold.Sprint(response.GetAlarm().GetTime()), domain.FormatTimeLeft(response.TimeLeft()))
}

// timeLeft renders HH:MM until the alarm, or "-" once its time has passed.
func timeLeft(a *rpc.Alarm, now int) string {
	left := int(a.TriggerSecond) - now
	if left <= 0 {
		return "-"
	}

	return domain.FormatTimeLeft(time.Duration(left) * time.Second)
}
