//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// Client wraps the gRPC AlarmClockService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm daemon.
	conn *grpc.ClientConn
	// api is the typed AlarmClockService client.
	api *rpc.AlarmClockServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the alarm daemon.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         rpc.NewAlarmClockServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// AddAlarm schedules an alarm at hours:minutes. Out-of-range values are
// rejected locally with *domain.InvalidTimeError before any call is made.
func (c *Client) AddAlarm(ctx context.Context, actor *rpc.SystemActor, hours, minutes int) (*rpc.Alarm, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	if err := domain.ValidateTime(hours, minutes); err != nil {
		return nil, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &rpc.AddAlarmRequest{
		Actor:   actor,
		Hours:   int32(hours),   //nolint:gosec // Validated above.
		Minutes: int32(minutes), //nolint:gosec // Validated above.
	}

	response, err := c.api.AddAlarm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("add alarm: %w", err)
	}

	return response.GetAlarm(), nil
}

// CancelAlarm removes the alarm with the given ID.
func (c *Client) CancelAlarm(ctx context.Context, actor *rpc.SystemActor, id string) (*rpc.CancelAlarmResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.CancelAlarm(callCtx, &rpc.CancelAlarmRequest{Actor: actor, ID: id})
	if err != nil {
		return nil, fmt.Errorf("cancel alarm: %w", err)
	}

	return response, nil
}

// ListAlarms retrieves the ordered alarm list.
func (c *Client) ListAlarms(ctx context.Context, actor *rpc.SystemActor) (*rpc.ListAlarmsResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListAlarms(callCtx, &rpc.ListAlarmsRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return response, nil
}

// NextAlarm retrieves the upcoming alarm.
func (c *Client) NextAlarm(ctx context.Context, actor *rpc.SystemActor) (*rpc.NextAlarmResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.NextAlarm(callCtx, &rpc.NextAlarmRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("next alarm: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
