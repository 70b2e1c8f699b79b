package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// newPlainPrinter returns a printer with colors disabled.
func newPlainPrinter() (*printer, *bytes.Buffer) {
	var buf bytes.Buffer

	p := newPrinter(&buf)
	p.bold.DisableColor()
	p.ringing.DisableColor()
	p.faint.DisableColor()

	return p, &buf
}

// TestPrinter_List renders ringing and scheduled alarms with time left.
func TestPrinter_List(t *testing.T) {
	t.Parallel()

	p, buf := newPlainPrinter()

	p.list(&rpc.ListAlarmsResponse{
		NowSecond: 6 * 3600,
		Alarms: []*rpc.Alarm{
			{ID: "a1", Time: "05:00", TriggerSecond: 5 * 3600, IsRinging: true},
			{ID: "a2", Time: "06:15", TriggerSecond: 6*3600 + 15*60},
		},
	})

	out := buf.String()
	require.Contains(t, out, "RINGING")
	require.Contains(t, out, "scheduled")
	require.Contains(t, out, "00:15")
	require.Contains(t, out, "a2")

	buf.Reset()
	p.list(new(rpc.ListAlarmsResponse))
	require.Equal(t, "No alarms\n", buf.String())
}

// TestPrinter_NextAndCancel covers the one-line outputs.
func TestPrinter_NextAndCancel(t *testing.T) {
	t.Parallel()

	p, buf := newPlainPrinter()

	p.next(&rpc.NextAlarmResponse{
		Found:           true,
		Alarm:           &rpc.Alarm{Time: "06:15"},
		TimeLeftSeconds: int64((15 * time.Minute) / time.Second),
	})
	require.Equal(t, "Next alarm 06:15 in 00:15\n", buf.String())

	buf.Reset()
	p.next(new(rpc.NextAlarmResponse))
	require.Equal(t, "No upcoming alarms\n", buf.String())

	buf.Reset()
	p.cancelled("x", &rpc.CancelAlarmResponse{Removed: true, Alarm: &rpc.Alarm{Time: "07:30", IsRinging: true}})
	require.Equal(t, "Alarm 07:30 dismissed\n", buf.String())

	buf.Reset()
	p.cancelled("x", &rpc.CancelAlarmResponse{Removed: true, Alarm: &rpc.Alarm{Time: "07:30"}})
	require.Equal(t, "Alarm 07:30 removed\n", buf.String())

	buf.Reset()
	p.cancelled("x", new(rpc.CancelAlarmResponse))
	require.Equal(t, "No alarm with id x\n", buf.String())
}
