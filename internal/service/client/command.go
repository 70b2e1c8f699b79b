package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures alarmctl commands.
type Options struct {
	// ConfigPath to YAML settings file, defaults apply when it does not exist.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives command output, stdout when nil.
	Out io.Writer
}

// errAlarmIDRequired is returned when cancel is called without an ID.
var errAlarmIDRequired = errors.New("alarm id must be provided")

// session bundles what every command needs.
type session struct {
	// client is the connected daemon client.
	client *common.Client
	// actor identifies this user on the daemon.
	actor *rpc.SystemActor
	// printer renders output.
	printer *printer
}

// open loads settings, detects the actor and connects to the daemon.
func open(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor := common.DetectActor()

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("dial server: %w", err)
	}

	logger.DebugKV(ctx, "Connected to alarm daemon", "server_address", serverAddress)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &session{
		client:  client,
		actor:   actor,
		printer: newPrinter(out),
	}, nil
}

// close releases the connection.
func (s *session) close() {
	_ = s.client.Close()
}

// Add parses HH:MM and schedules the alarm on the daemon.
func Add(ctx context.Context, opts *Options, clockText string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	hours, minutes, err := domain.ParseTime(clockText)
	if err != nil {
		return err
	}

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	a, err := s.client.AddAlarm(ctx, s.actor, hours, minutes)
	if err != nil {
		return err
	}

	s.printer.added(a)

	return nil
}

// Cancel removes the alarm with the given ID. A missing alarm is reported
// but is not an error.
func Cancel(ctx context.Context, opts *Options, id string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	if id == "" {
		return errAlarmIDRequired
	}

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.CancelAlarm(ctx, s.actor, id)
	if err != nil {
		return err
	}

	s.printer.cancelled(id, response)

	return nil
}

// List prints every alarm in trigger order.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.ListAlarms(ctx, s.actor)
	if err != nil {
		return err
	}

	s.printer.list(response)

	return nil
}

// Next prints the upcoming alarm and the time left until it rings.
func Next(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	response, err := s.client.NextAlarm(ctx, s.actor)
	if err != nil {
		return err
	}

	s.printer.next(response)

	return nil
}
