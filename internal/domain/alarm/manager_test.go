package alarm

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// clockSecond converts h:m:s to seconds since midnight for readability.
func clockSecond(hours, minutes, seconds int) int {
	return TriggerSecond(hours, minutes) + seconds
}

// TestManager_AddAlarm_ValidRange adds every valid time and checks the trigger second.
func TestManager_AddAlarm_ValidRange(t *testing.T) {
	t.Parallel()

	m := NewManager()

	for h := 0; h <= MaxHours; h++ {
		for minute := 0; minute <= MaxMinutes; minute++ {
			a, err := m.AddAlarm(h, minute)
			require.NoError(t, err)
			require.Equal(t, h*3600+minute*60, a.TriggerSecond())
			require.False(t, a.IsRinging)
			require.NotEqual(t, uuid.Nil, a.ID)
		}
	}

	require.Equal(t, 24*60, m.Len())
}

// TestManager_AddAlarm_Invalid ensures out-of-range input is rejected without insertion.
func TestManager_AddAlarm_Invalid(t *testing.T) {
	t.Parallel()

	m := NewManager()
	_, err := m.AddAlarm(12, 0)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {24, 0}, {0, -1}, {0, 60}, {100, 100}, {-5, -5}}
	for _, c := range cases {
		a, err := m.AddAlarm(c[0], c[1])
		require.Nil(t, a)
		require.ErrorIs(t, err, ErrInvalidTime)

		var timeErr *InvalidTimeError
		require.ErrorAs(t, err, &timeErr)
		require.Equal(t, c[0], timeErr.Hours)
		require.Equal(t, c[1], timeErr.Minutes)
		require.Equal(t, 1, m.Len())
	}
}

// TestManager_Ordering checks ascending order with insertion order kept for ties.
func TestManager_Ordering(t *testing.T) {
	t.Parallel()

	m := NewManager()

	first, err := m.AddAlarm(9, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(6, 15)
	require.NoError(t, err)
	second, err := m.AddAlarm(9, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(23, 59)
	require.NoError(t, err)
	_, err = m.AddAlarm(0, 0)
	require.NoError(t, err)

	alarms := m.Alarms()
	require.True(t, slices.IsSortedFunc(alarms, func(x, y *Alarm) int {
		return x.TriggerSecond() - y.TriggerSecond()
	}))

	var nines []uuid.UUID
	for _, a := range alarms {
		if a.Hours == 9 {
			nines = append(nines, a.ID)
		}
	}

	require.Equal(t, []uuid.UUID{first.ID, second.ID}, nines)
}

// TestManager_CheckAlarms_Threshold fires exactly at the trigger second.
func TestManager_CheckAlarms_Threshold(t *testing.T) {
	t.Parallel()

	m := NewManager()
	added, err := m.AddAlarm(7, 30)
	require.NoError(t, err)

	require.Empty(t, m.CheckAlarms(26999))
	require.False(t, m.Alarms()[0].IsRinging)

	fired := m.CheckAlarms(27000)
	require.Len(t, fired, 1)
	require.Equal(t, added.ID, fired[0].ID)
	require.True(t, fired[0].IsRinging)
	require.True(t, m.Alarms()[0].IsRinging)
}

// TestManager_CheckAlarms_Idempotent ensures ringing alarms never fire twice.
func TestManager_CheckAlarms_Idempotent(t *testing.T) {
	t.Parallel()

	m := NewManager()
	_, err := m.AddAlarm(6, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(7, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(8, 0)
	require.NoError(t, err)

	now := clockSecond(7, 30, 0)

	require.Len(t, m.CheckAlarms(now), 2)
	require.Empty(t, m.CheckAlarms(now))
	require.Empty(t, m.CheckAlarms(now+1))
	require.Len(t, m.Ringing(), 2)

	// A late tick still fires the remaining one.
	fired := m.CheckAlarms(clockSecond(9, 0, 0))
	require.Len(t, fired, 1)
	require.Equal(t, 8, fired[0].Hours)
}

// TestManager_NextAlarm picks the closest future scheduled alarm.
func TestManager_NextAlarm(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.NextAlarm(0)
	require.False(t, ok)

	_, err := m.AddAlarm(7, 30)
	require.NoError(t, err)
	early, err := m.AddAlarm(6, 15)
	require.NoError(t, err)

	now := clockSecond(6, 0, 0)

	next, ok := m.NextAlarm(now)
	require.True(t, ok)
	require.Equal(t, early.ID, next.ID)
	require.Equal(t, 900*time.Second, next.TimeLeft(now))

	// Exactly at the trigger second the alarm is no longer "next".
	next, ok = m.NextAlarm(clockSecond(6, 15, 0))
	require.True(t, ok)
	require.Equal(t, 7, next.Hours)

	_, ok = m.NextAlarm(clockSecond(7, 30, 0))
	require.False(t, ok)
}

// TestManager_NextAlarm_SkipsRingingAndTies checks ringing exclusion and tie-breaking.
func TestManager_NextAlarm_SkipsRingingAndTies(t *testing.T) {
	t.Parallel()

	m := NewManager()

	first, err := m.AddAlarm(10, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(10, 0)
	require.NoError(t, err)
	_, err = m.AddAlarm(5, 0)
	require.NoError(t, err)

	// The 05:00 alarm rings; it is behind now anyway but the check proves exclusion.
	require.Len(t, m.CheckAlarms(clockSecond(5, 0, 0)), 1)

	next, ok := m.NextAlarm(clockSecond(4, 0, 0))
	require.True(t, ok)
	require.Equal(t, first.ID, next.ID)
}

// TestManager_CancelAlarm covers scheduled, ringing and repeated cancellation.
func TestManager_CancelAlarm(t *testing.T) {
	t.Parallel()

	m := NewManager()

	scheduled, err := m.AddAlarm(8, 0)
	require.NoError(t, err)
	ringing, err := m.AddAlarm(7, 30)
	require.NoError(t, err)

	require.Len(t, m.CheckAlarms(clockSecond(7, 30, 0)), 1)

	removed, ok := m.CancelAlarm(ringing.ID)
	require.True(t, ok)
	require.True(t, removed.IsRinging)
	require.Equal(t, 1, m.Len())

	// Second cancel is a no-op.
	removed, ok = m.CancelAlarm(ringing.ID)
	require.False(t, ok)
	require.Nil(t, removed)

	// The cancelled alarm never fires again.
	for _, a := range m.CheckAlarms(clockSecond(7, 45, 0)) {
		require.NotEqual(t, ringing.ID, a.ID)
	}

	removed, ok = m.CancelAlarm(scheduled.ID)
	require.True(t, ok)
	require.False(t, removed.IsRinging)
	require.Zero(t, m.Len())
	require.Empty(t, m.CheckAlarms(clockSecond(23, 59, 59)))

	_, ok = m.CancelAlarm(uuid.New())
	require.False(t, ok)
}

// TestManager_SnapshotsAreCopies ensures returned alarms cannot mutate the collection.
func TestManager_SnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	m := NewManager()

	added, err := m.AddAlarm(7, 0)
	require.NoError(t, err)

	added.IsRinging = true
	added.Hours = 1

	snapshot := m.Alarms()
	require.False(t, snapshot[0].IsRinging)
	require.Equal(t, 7, snapshot[0].Hours)

	snapshot[0].IsRinging = true
	require.Len(t, m.CheckAlarms(TriggerSecond(7, 0)), 1)
}

// TestManager_MidnightWrap documents that a missed midnight fires early-morning alarms at once.
func TestManager_MidnightWrap(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, err := m.AddAlarm(6, 0)
	require.NoError(t, err)

	// Added at 23:00 for "tomorrow", the 06:00 alarm is already behind now.
	fired := m.CheckAlarms(clockSecond(23, 0, 0))
	require.Len(t, fired, 1)
}

// TestManager_WallClock verifies CreatedAt comes from the configured wall clock.
func TestManager_WallClock(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	m := NewManager(WithWallClock(func() time.Time { return stamp }))

	a, err := m.AddAlarm(7, 0)
	require.NoError(t, err)
	require.Equal(t, stamp, a.CreatedAt)
}

// TestManager_Concurrent hammers the manager from several goroutines.
func TestManager_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewManager()

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range 50 {
				a, err := m.AddAlarm((i+j)%24, j%60)
				if err != nil {
					t.Error(err)
					return
				}

				m.CheckAlarms(TriggerSecond(12, 0))
				m.NextAlarm(TriggerSecond(12, 0))

				if j%2 == 0 {
					m.CancelAlarm(a.ID)
				}
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 8*25, m.Len())
	require.True(t, slices.IsSortedFunc(m.Alarms(), func(x, y *Alarm) int {
		return x.TriggerSecond() - y.TriggerSecond()
	}))
}
