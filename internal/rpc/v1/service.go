package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "alarmclock.v1.AlarmClockService"

// Full method names.
const (
	AddAlarmFullMethodName    = "/" + ServiceName + "/AddAlarm"
	CancelAlarmFullMethodName = "/" + ServiceName + "/CancelAlarm"
	ListAlarmsFullMethodName  = "/" + ServiceName + "/ListAlarms"
	NextAlarmFullMethodName   = "/" + ServiceName + "/NextAlarm"
)

// AlarmClockServiceServer is the server API for the alarm clock service.
type AlarmClockServiceServer interface {
	AddAlarm(ctx context.Context, req *AddAlarmRequest) (*AlarmResponse, error)
	CancelAlarm(ctx context.Context, req *CancelAlarmRequest) (*CancelAlarmResponse, error)
	ListAlarms(ctx context.Context, req *ListAlarmsRequest) (*ListAlarmsResponse, error)
	NextAlarm(ctx context.Context, req *NextAlarmRequest) (*NextAlarmResponse, error)
}

// UnimplementedAlarmClockServiceServer answers every call with codes.Unimplemented.
type UnimplementedAlarmClockServiceServer struct{}

func (UnimplementedAlarmClockServiceServer) AddAlarm(context.Context, *AddAlarmRequest) (*AlarmResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddAlarm not implemented")
}

func (UnimplementedAlarmClockServiceServer) CancelAlarm(
	context.Context,
	*CancelAlarmRequest,
) (*CancelAlarmResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelAlarm not implemented")
}

func (UnimplementedAlarmClockServiceServer) ListAlarms(
	context.Context,
	*ListAlarmsRequest,
) (*ListAlarmsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAlarms not implemented")
}

func (UnimplementedAlarmClockServiceServer) NextAlarm(context.Context, *NextAlarmRequest) (*NextAlarmResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method NextAlarm not implemented")
}

// RegisterAlarmClockServiceServer registers srv on s.
func RegisterAlarmClockServiceServer(s grpc.ServiceRegistrar, srv AlarmClockServiceServer) {
	s.RegisterService(&AlarmClockServiceDesc, srv)
}

// unaryHandler adapts a typed method into a grpc.MethodHandler.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(AlarmClockServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		impl, ok := srv.(AlarmClockServiceServer)
		if !ok {
			return nil, status.Error(codes.Internal, fmt.Sprintf("unexpected service type %T", srv))
		}

		if interceptor == nil {
			return call(impl, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, status.Error(codes.Internal, fmt.Sprintf("unexpected request type %T", req))
			}

			return call(impl, ctx, typed)
		}

		return interceptor(ctx, in, info, handler)
	}
}

// AlarmClockServiceDesc describes the alarm clock service for grpc.Server.
//
//nolint:gochecknoglobals // Service descriptors are package-level by gRPC convention.
var AlarmClockServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlarmClockServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddAlarm",
			Handler:    unaryHandler(AddAlarmFullMethodName, AlarmClockServiceServer.AddAlarm),
		},
		{
			MethodName: "CancelAlarm",
			Handler:    unaryHandler(CancelAlarmFullMethodName, AlarmClockServiceServer.CancelAlarm),
		},
		{
			MethodName: "ListAlarms",
			Handler:    unaryHandler(ListAlarmsFullMethodName, AlarmClockServiceServer.ListAlarms),
		},
		{
			MethodName: "NextAlarm",
			Handler:    unaryHandler(NextAlarmFullMethodName, AlarmClockServiceServer.NextAlarm),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alarmclock/v1/alarm_clock.proto",
}

// AlarmClockServiceClient is the typed client for the alarm clock service.
type AlarmClockServiceClient struct {
	// cc is the underlying connection.
	cc grpc.ClientConnInterface
}

// NewAlarmClockServiceClient returns a client bound to cc.
func NewAlarmClockServiceClient(cc grpc.ClientConnInterface) *AlarmClockServiceClient {
	return &AlarmClockServiceClient{cc: cc}
}

// AddAlarm calls AlarmClockService.AddAlarm.
func (c *AlarmClockServiceClient) AddAlarm(
	ctx context.Context,
	in *AddAlarmRequest,
	opts ...grpc.CallOption,
) (*AlarmResponse, error) {
	out := new(AlarmResponse)
	if err := c.cc.Invoke(ctx, AddAlarmFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

// CancelAlarm calls AlarmClockService.CancelAlarm.
func (c *AlarmClockServiceClient) CancelAlarm(
	ctx context.Context,
	in *CancelAlarmRequest,
	opts ...grpc.CallOption,
) (*CancelAlarmResponse, error) {
	out := new(CancelAlarmResponse)
	if err := c.cc.Invoke(ctx, CancelAlarmFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

// ListAlarms calls AlarmClockService.ListAlarms.
func (c *AlarmClockServiceClient) ListAlarms(
	ctx context.Context,
	in *ListAlarmsRequest,
	opts ...grpc.CallOption,
) (*ListAlarmsResponse, error) {
	out := new(ListAlarmsResponse)
	if err := c.cc.Invoke(ctx, ListAlarmsFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

// NextAlarm calls AlarmClockService.NextAlarm.
func (c *AlarmClockServiceClient) NextAlarm(
	ctx context.Context,
	in *NextAlarmRequest,
	opts ...grpc.CallOption,
) (*NextAlarmResponse, error) {
	out := new(NextAlarmResponse)
	if err := c.cc.Invoke(ctx, NextAlarmFullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

// withCodec prepends the JSON content subtype to the caller's options.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
