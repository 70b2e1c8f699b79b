package checker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// TestWatcher_ReportsTransitions walks an alarm through schedule, ring and removal.
func TestWatcher_ReportsTransitions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := newWatcher(&buf)

	w.observe([]*rpc.Alarm{{ID: "a", Time: "07:30"}})
	require.Equal(t, "+ 07:30 scheduled\n", buf.String())

	// Nothing changed.
	buf.Reset()
	w.observe([]*rpc.Alarm{{ID: "a", Time: "07:30"}})
	require.Empty(t, buf.String())

	buf.Reset()
	w.observe([]*rpc.Alarm{
		{ID: "b", Time: "06:15"},
		{ID: "a", Time: "07:30", IsRinging: true},
	})
	require.Equal(t, "+ 06:15 added\n! 07:30 is ringing\n", buf.String())

	// Still ringing: reported once only.
	buf.Reset()
	w.observe([]*rpc.Alarm{
		{ID: "b", Time: "06:15"},
		{ID: "a", Time: "07:30", IsRinging: true},
	})
	require.Empty(t, buf.String())

	buf.Reset()
	w.observe([]*rpc.Alarm{{ID: "b", Time: "06:15"}})
	require.Equal(t, "- 07:30 removed\n", buf.String())
}

// TestWatcher_FirstObservationRinging reports an alarm already ringing when watching starts.
func TestWatcher_FirstObservationRinging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := newWatcher(&buf)
	w.observe([]*rpc.Alarm{{ID: "a", Time: "05:00", IsRinging: true}})
	require.Equal(t, "+ 05:00 scheduled\n! 05:00 is ringing\n", buf.String())
}
