package rpc

import (
	"context"
	"net"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vskvj3/vessel/internal/core"
	"github.com/vskvj3/vessel/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	serviceName   = "vessel.ContainerService"
	executeMethod = "/" + serviceName + "/Execute"

	// codeTrailer carries the command error code next to the gRPC status.
	codeTrailer = "vessel-code"
)

type ExecuteRequest struct {
	Request map[string]interface{} `msgpack:"request"`
}

type ExecuteResponse struct {
	Response map[string]interface{} `msgpack:"response"`
}

// ContainerServiceServer is the server API for the container service.
type ContainerServiceServer interface {
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
}

func executeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContainerServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: executeMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContainerServiceServer).Execute(ctx, req.(*ExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContainerServiceDesc describes the service to grpc.Server.RegisterService.
var ContainerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ContainerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    executeHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// Server runs commands received over gRPC against the shared handler.
type Server struct {
	CommandHandler *core.CommandHandler
}

func NewServer(handler *core.CommandHandler) *Server {
	return &Server{CommandHandler: handler}
}

func (s *Server) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	if req.Request == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	response, err := s.CommandHandler.HandleCommand(req.Request)
	if err != nil {
		code := core.ErrorCode(err)
		if trailerErr := grpc.SetTrailer(ctx, metadata.Pairs(codeTrailer, code)); trailerErr != nil {
			utils.GetLogger().Warn("Failed to set error code trailer: " + trailerErr.Error())
		}
		return nil, status.Error(StatusCode(code), err.Error())
	}
	return &ExecuteResponse{Response: response}, nil
}

// StatusCode maps a command error code onto the closest gRPC code.
func StatusCode(code string) codes.Code {
	switch code {
	case core.CodeInvalidArgument, core.CodeMissingArgument:
		return codes.InvalidArgument
	case core.CodeIndexOutOfRange, core.CodeIteratorExhausted:
		return codes.OutOfRange
	case core.CodeEmptyCollection, core.CodeNullReference, core.CodeWrongType:
		return codes.FailedPrecondition
	case core.CodeKeyExists:
		return codes.AlreadyExists
	case core.CodeNotFound:
		return codes.NotFound
	case core.CodeUnknownCommand:
		return codes.Unimplemented
	default:
		return codes.Internal
	}
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	logger := utils.GetLogger()
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		logger.Debug(info.FullMethod + " failed after " + time.Since(start).String() + ": " + err.Error())
	} else {
		logger.Debug(info.FullMethod + " served in " + time.Since(start).String())
	}
	return resp, err
}

// NewGRPCServer builds a grpc.Server with the container service registered.
func NewGRPCServer(handler *core.CommandHandler) *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor))
	server.RegisterService(&ContainerServiceDesc, NewServer(handler))
	return server
}

// Serve listens on port and serves gRPC until the server is stopped.
func Serve(server *grpc.Server, port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return errors.Wrapf(err, "listen on grpc port %s", port)
	}
	utils.GetLogger().Info("gRPC server is listening on " + lis.Addr().String())
	if err := server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "serve grpc")
	}
	return nil
}
