package integration

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/server"
)

// at returns h:m:s on a fixed day in UTC.
func at(hours, minutes, seconds int) time.Time {
	return time.Date(2026, 10, 15, hours, minutes, seconds, 0, time.UTC)
}

// reserveAddress returns a free loopback address.
func reserveAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

// startDaemon runs alarm-clockd in-process on addr with a manual clock and
// returns the settings path. The daemon stops when the test ends.
func startDaemon(t *testing.T, addr string, source clock.TimeSource) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       3 * time.Second,
		PollInterval:  20 * time.Millisecond,
		LogLevel:      "error",
		Notifiers:     []string{config.NotifierLog},
	}))

	done := make(chan error, 1)

	go func() {
		options := &server.Options{
			ConfigPath:    cfgPath,
			AllowMultiple: true,
			TimeSource:    source,
		}

		done <- server.Run(ctx, options)
	}()

	// Wait for the listener before handing the address out.
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
		if err != nil {
			return false
		}

		_ = conn.Close()

		return true
	}, 3*time.Second, 20*time.Millisecond)

	t.Cleanup(func() {
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Error("daemon did not stop")
		}
	})

	return cfgPath
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	// buf holds the written bytes.
	buf bytes.Buffer
	// mu protects buf.
	mu sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
