package checker

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options controls the watch polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between list calls.
	PollInterval time.Duration
	// Out receives the change reports, stdout when nil.
	Out io.Writer
}

// Run polls the alarm list and prints changes until ctx is canceled.
// RPC failures are logged and polling continues.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-watch")

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = cfg.PollInterval
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor := common.DetectActor()

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger.InfoKV(ctx, "Watching alarms", "server_address", serverAddress, "interval", pollInterval.String())

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	w := newWatcher(out)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case <-ticker.C:
			response, err := client.ListAlarms(ctx, actor)
			if err != nil {
				logger.ErrorKV(ctx, "List alarms failed", "error", err)

				continue
			}

			w.observe(response.GetAlarms())
		}
	}
}

// watcher remembers the last seen alarms and reports differences.
type watcher struct {
	// out receives change lines.
	out io.Writer
	// seen maps alarm IDs to their last observed state.
	seen map[string]*rpc.Alarm
	// primed is false until the first observation.
	primed bool
}

// newWatcher returns a watcher writing to out.
func newWatcher(out io.Writer) *watcher {
	return &watcher{
		out:  out,
		seen: make(map[string]*rpc.Alarm),
	}
}

// observe compares alarms with the previous observation and prints changes.
// The first observation lists everything as scheduled.
func (w *watcher) observe(alarms []*rpc.Alarm) {
	current := make(map[string]*rpc.Alarm, len(alarms))

	for _, a := range alarms {
		current[a.GetID()] = a

		previous, known := w.seen[a.GetID()]
		if !known {
			verb := "scheduled"
			if w.primed {
				verb = "added"
			}

			w.printf("+ %s %s\n", a.GetTime(), verb)
		}

		if a.GetIsRinging() && !previous.GetIsRinging() {
			w.printf("! %s is ringing\n", a.GetTime())
		}
	}

	for id, previous := range w.seen {
		if _, ok := current[id]; !ok {
			w.printf("- %s removed\n", previous.GetTime())
		}
	}

	w.seen = current
	w.primed = true
}

// printf writes a line, ignoring write errors on the terminal.
func (w *watcher) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}
