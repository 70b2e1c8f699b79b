package integration

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/checker"
	"github.com/oshokin/alarm-clock/internal/service/client"
)

var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// TestCLI_Commands runs the alarmctl command handlers against the daemon.
func TestCLI_Commands(t *testing.T) {
	t.Parallel()

	addr := reserveAddress(t)
	cfgPath := startDaemon(t, addr, clock.NewManual(at(6, 0, 0)))

	ctx := context.Background()

	var out bytes.Buffer

	opts := &client.Options{ConfigPath: cfgPath, Out: &out}

	require.NoError(t, client.Add(ctx, opts, "7:30"))
	require.Contains(t, out.String(), "Alarm 07:30 scheduled")

	id := uuidPattern.FindString(out.String())
	require.NotEmpty(t, id)

	err := client.Add(ctx, opts, "25:00")
	require.ErrorIs(t, err, alarm.ErrInvalidTime)

	out.Reset()
	require.NoError(t, client.Next(ctx, opts))
	require.Contains(t, out.String(), "Next alarm 07:30 in 01:30")

	out.Reset()
	require.NoError(t, client.List(ctx, opts))
	require.Contains(t, out.String(), "07:30")
	require.Contains(t, out.String(), id)

	out.Reset()
	require.NoError(t, client.Cancel(ctx, opts, id))
	require.Contains(t, out.String(), "Alarm 07:30 removed")

	out.Reset()
	require.NoError(t, client.Cancel(ctx, opts, id))
	require.Contains(t, out.String(), "No alarm with id")

	out.Reset()
	require.NoError(t, client.List(ctx, opts))
	require.Contains(t, out.String(), "No alarms")
}

// TestCLI_Watch checks that watch reports scheduling, ringing and removal.
func TestCLI_Watch(t *testing.T) {
	t.Parallel()

	addr := reserveAddress(t)
	source := clock.NewManual(at(6, 59, 0))
	cfgPath := startDaemon(t, addr, source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cliOpts := &client.Options{ConfigPath: cfgPath, Out: new(bytes.Buffer)}
	require.NoError(t, client.Add(ctx, cliOpts, "07:00"))

	out := new(syncBuffer)
	done := make(chan error, 1)

	go func() {
		done <- checker.Run(ctx, &checker.Options{
			ConfigPath:   cfgPath,
			PollInterval: 20 * time.Millisecond,
			Out:          out,
		})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+ 07:00 scheduled")
	}, 3*time.Second, 10*time.Millisecond)

	source.Set(at(7, 0, 0))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "! 07:00 is ringing")
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, client.Add(ctx, cliOpts, "08:15"))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "+ 08:15 added")
	}, 3*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop")
	}
}
