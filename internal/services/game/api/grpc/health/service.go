// Package health declares the chronicles.game.v1.HealthService gRPC service
// and its server and client. Messages are google.protobuf.Struct values so
// the service needs no generated code.
package health

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "chronicles.game.v1.HealthService"

// Full method names.
const (
	ExecuteFullMethodName         = "/" + ServiceName + "/Execute"
	GetStatusFullMethodName       = "/" + ServiceName + "/GetStatus"
	ApplyDamageFullMethodName     = "/" + ServiceName + "/ApplyDamage"
	HealDamageFullMethodName      = "/" + ServiceName + "/HealDamage"
	SetBoxFullMethodName          = "/" + ServiceName + "/SetBox"
	ClearAllFullMethodName        = "/" + ServiceName + "/ClearAll"
	ResizeFullMethodName          = "/" + ServiceName + "/Resize"
	CreateCharacterFullMethodName = "/" + ServiceName + "/CreateCharacter"
)

// HealthServiceServer is the server API for HealthService.
type HealthServiceServer interface {
	Execute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyDamage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	HealDamage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBox(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearAll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Resize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type methodCall func(HealthServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call methodCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(HealthServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for HealthService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HealthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Execute", Handler: unaryHandler(ExecuteFullMethodName, HealthServiceServer.Execute)},
		{MethodName: "GetStatus", Handler: unaryHandler(GetStatusFullMethodName, HealthServiceServer.GetStatus)},
		{MethodName: "ApplyDamage", Handler: unaryHandler(ApplyDamageFullMethodName, HealthServiceServer.ApplyDamage)},
		{MethodName: "HealDamage", Handler: unaryHandler(HealDamageFullMethodName, HealthServiceServer.HealDamage)},
		{MethodName: "SetBox", Handler: unaryHandler(SetBoxFullMethodName, HealthServiceServer.SetBox)},
		{MethodName: "ClearAll", Handler: unaryHandler(ClearAllFullMethodName, HealthServiceServer.ClearAll)},
		{MethodName: "Resize", Handler: unaryHandler(ResizeFullMethodName, HealthServiceServer.Resize)},
		{MethodName: "CreateCharacter", Handler: unaryHandler(CreateCharacterFullMethodName, HealthServiceServer.CreateCharacter)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chronicles/game/v1/health.proto",
}

// RegisterHealthServiceServer registers srv on s.
func RegisterHealthServiceServer(s grpc.ServiceRegistrar, srv HealthServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
