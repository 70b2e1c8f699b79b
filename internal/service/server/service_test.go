package server

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// countingNotifier counts ring and silence calls.
type countingNotifier struct {
	// rings counts Ring calls.
	rings int
	// silences counts Silence calls.
	silences int
	// mu protects the counters.
	mu sync.Mutex
}

func (c *countingNotifier) Ring(context.Context, *domain.Alarm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rings++

	return nil
}

func (c *countingNotifier) Silence(context.Context, *domain.Alarm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.silences++

	return nil
}

func (*countingNotifier) Close() error { return nil }

func (c *countingNotifier) ringCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rings
}

// TestService_AddListCancel verifies the service delegates to the scheduler.
func TestService_AddListCancel(t *testing.T) {
	t.Parallel()

	source := clock.NewManual(time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC))
	n := new(countingNotifier)
	s := newService(scheduler.New(domain.NewManager(), source, n))
	ctx := context.Background()

	actor := &domain.Actor{
		Hostname: "kitchen",
		Username: "o.shokin",
	}

	late, err := s.AddAlarm(ctx, actor, 7, 30)
	require.NoError(t, err)
	early, err := s.AddAlarm(ctx, actor, 6, 15)
	require.NoError(t, err)

	_, err = s.AddAlarm(ctx, actor, 7, 60)
	require.ErrorIs(t, err, domain.ErrInvalidTime)

	now, alarms := s.ListAlarms(ctx)
	require.Equal(t, domain.TriggerSecond(6, 0), now)
	require.Len(t, alarms, 2)
	require.Equal(t, early.ID, alarms[0].ID)

	next, left, ok := s.NextAlarm(ctx)
	require.True(t, ok)
	require.Equal(t, early.ID, next.ID)
	require.Equal(t, 15*time.Minute, left)

	// Let the early alarm ring, then cancel it.
	source.Advance(15 * time.Minute)
	s.scheduler.Tick(ctx)
	require.Equal(t, 1, n.rings)

	removed, ok := s.CancelAlarm(ctx, actor, early.ID)
	require.True(t, ok)
	require.True(t, removed.IsRinging)
	require.Equal(t, 1, n.silences)

	removed, ok = s.CancelAlarm(ctx, nil, late.ID)
	require.True(t, ok)
	require.False(t, removed.IsRinging)
	require.Equal(t, 1, n.silences)

	_, ok = s.CancelAlarm(ctx, actor, uuid.New())
	require.False(t, ok)
}

// TestResolveListenAddress covers override, loopback and wildcard binding.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("127.0.0.1:50151", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("127.0.0.1:50151", "")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:50151", addr)

	addr, err = resolveListenAddress("clock.example.com:50151", "")
	require.NoError(t, err)
	require.Equal(t, ":50151", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestServe_FailureStopsScheduler checks that a failing gRPC server also
// stops the alarm checks before serve returns.
func TestServe_FailureStopsScheduler(t *testing.T) {
	t.Parallel()

	source := clock.NewManual(time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC))
	n := new(countingNotifier)
	sched := scheduler.New(domain.NewManager(), source, n, scheduler.WithInterval(5*time.Millisecond))

	_, err := sched.Add(context.Background(), 6, 1)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- serve(ctx, grpc.NewServer(), lis, sched)
	}()

	select {
	case err = <-done:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}

	// A scheduler still running would ring this alarm within a few intervals.
	source.Advance(time.Minute)
	time.Sleep(50 * time.Millisecond)
	require.Zero(t, n.ringCount())
}
