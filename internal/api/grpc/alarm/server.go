package alarm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	AddAlarm(ctx context.Context, actor *domain.Actor, hours, minutes int) (*domain.Alarm, error)
	CancelAlarm(ctx context.Context, actor *domain.Actor, id uuid.UUID) (*domain.Alarm, bool)
	ListAlarms(ctx context.Context) (int, []*domain.Alarm)
	NextAlarm(ctx context.Context) (*domain.Alarm, time.Duration, bool)
}

// Server implements the AlarmClockService gRPC API.
type Server struct {
	rpc.UnimplementedAlarmClockServiceServer

	// service provides the business logic for alarm operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// AddAlarm schedules a new alarm.
func (s *Server) AddAlarm(ctx context.Context, req *rpc.AddAlarmRequest) (*rpc.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.Actor == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	a, err := s.service.AddAlarm(ctx, toDomainActor(req.Actor), int(req.Hours), int(req.Minutes))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTime) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return nil, status.Error(codes.Internal, "unable to add alarm")
	}

	return &rpc.AlarmResponse{Alarm: toProtoAlarm(a)}, nil
}

// CancelAlarm removes an alarm. Unknown IDs succeed with Removed=false.
func (s *Server) CancelAlarm(ctx context.Context, req *rpc.CancelAlarmRequest) (*rpc.CancelAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.Actor == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid alarm id %q", req.ID)
	}

	removed, ok := s.service.CancelAlarm(ctx, toDomainActor(req.Actor), id)

	return &rpc.CancelAlarmResponse{
		Removed: ok,
		Alarm:   toProtoAlarm(removed),
	}, nil
}

// ListAlarms returns every alarm in trigger order.
func (s *Server) ListAlarms(ctx context.Context, _ *rpc.ListAlarmsRequest) (*rpc.ListAlarmsResponse, error) {
	now, alarms := s.service.ListAlarms(ctx)

	response := &rpc.ListAlarmsResponse{
		NowSecond: int32(now), //nolint:gosec // Seconds since midnight fit in int32.
		Alarms:    make([]*rpc.Alarm, 0, len(alarms)),
	}

	for _, a := range alarms {
		response.Alarms = append(response.Alarms, toProtoAlarm(a))
	}

	return response, nil
}

// NextAlarm returns the upcoming alarm, if any.
func (s *Server) NextAlarm(ctx context.Context, _ *rpc.NextAlarmRequest) (*rpc.NextAlarmResponse, error) {
	next, left, ok := s.service.NextAlarm(ctx)
	if !ok {
		return &rpc.NextAlarmResponse{}, nil
	}

	return &rpc.NextAlarmResponse{
		Found:           true,
		Alarm:           toProtoAlarm(next),
		TimeLeftSeconds: int64(left / time.Second),
	}, nil
}

// toDomainActor converts a wire SystemActor to a domain Actor.
func toDomainActor(actor *rpc.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoAlarm converts a domain alarm to its wire form.
//
//nolint:gosec // Clock fields are range-checked by the domain.
func toProtoAlarm(a *domain.Alarm) *rpc.Alarm {
	if a == nil {
		return nil
	}

	return &rpc.Alarm{
		ID:            a.ID.String(),
		Hours:         int32(a.Hours),
		Minutes:       int32(a.Minutes),
		Time:          a.String(),
		TriggerSecond: int32(a.TriggerSecond()),
		IsRinging:     a.IsRinging,
		CreatedAt:     a.CreatedAt,
	}
}
