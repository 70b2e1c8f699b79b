package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notifier"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
	"github.com/oshokin/alarm-clock/internal/service/instance"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Options controls the alarm-clockd process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// AllowMultiple skips the check for another running daemon.
	AllowMultiple bool
	// TimeSource overrides the wall clock, mainly for tests.
	TimeSource clock.TimeSource
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the scheduler and the gRPC server and blocks until the context
// is canceled or the server stops.
//
//nolint:funlen // Linear start-up sequence; splitting it hides the order.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-clockd")

	settings, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	if !opts.AllowMultiple {
		if err = instance.EnsureSingle(instance.CurrentName(), nil); err != nil {
			return err
		}
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	notifiers, err := notifier.FromConfig(settings, os.Stdout)
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

	sched := scheduler.New(
		domain.NewManager(),
		source,
		notifiers,
		scheduler.WithInterval(settings.PollInterval),
	)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	rpc.RegisterAlarmClockServiceServer(grpcServer, api.NewServer(newService(sched)))

	logger.InfoKV(ctx, "Alarm clock listening",
		append([]any{"listen_address", listenAddress, "notifiers", settings.Notifiers}, version.Fields()...)...)

	if err = serve(ctx, grpcServer, lis, sched); err != nil {
		return err
	}

	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// serve runs the scheduler next to the gRPC server until ctx is canceled or
// Serve fails. It returns only after both have stopped.
func serve(ctx context.Context, grpcServer *grpc.Server, lis net.Listener, sched *scheduler.Scheduler) error {
	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	// The scheduler gets its own context so a failed Serve can stop it
	// before the notifiers are closed.
	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()

	go func() {
		_ = sched.Run(schedCtx) //nolint:errcheck // Run only returns nil on cancellation.

		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		stopScheduler()
		<-done

		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	host, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// A loopback address stays loopback; anything else binds every interface.
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return configAddr, nil
	}

	return ":" + port, nil
}
