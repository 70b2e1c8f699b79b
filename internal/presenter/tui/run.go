package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notifier"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// DefaultLogFilename is used when the settings name no log file.
const DefaultLogFilename = "alarm-clock.log"

// Options controls the alarm-clock terminal UI.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// TimeSource overrides the wall clock.
	TimeSource clock.TimeSource
}

// Run opens the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts *Options) error {
	settings, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	// The terminal belongs to bubbletea, so logs go to a file.
	logPath := settings.LogFile
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), DefaultLogFilename)
	}

	fileLogger, closeLog, err := logger.OpenFile(logPath, logger.AtomicLevel())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	defer closeLog() //nolint:errcheck // Nothing left to report to.

	logger.SetLogger(fileLogger)

	ctx = logger.WithName(logger.ToContext(ctx, fileLogger), "alarm-clock")

	notifiers, err := notifier.FromConfig(settings, bellOnly{out: os.Stderr})
	if err != nil {
		return fmt.Errorf("build notifiers: %w", err)
	}

	defer func() {
		if closeErr := notifiers.Close(); closeErr != nil {
			logger.ErrorKV(ctx, "Failed to close notifiers", "error", closeErr)
		}
	}()

	source := opts.TimeSource
	if source == nil {
		source = clock.System{}
	}

	sched := scheduler.New(alarm.NewManager(), source, notifiers)

	logger.InfoKV(ctx, "Terminal UI started", "log_file", logPath)

	program := tea.NewProgram(NewModel(ctx, sched), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	logger.Info(ctx, "Terminal UI stopped")

	return nil
}

// bellOnly forwards just the BEL character of bell notifier output; the
// ringing message itself is rendered by the model.
type bellOnly struct {
	out io.Writer
}

func (b bellOnly) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\a') >= 0 {
		if _, err := b.out.Write([]byte{'\a'}); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
