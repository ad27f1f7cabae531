package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/models"
)

// KeyExchangeServiceName is the fully qualified gRPC service name.
const KeyExchangeServiceName = "stegochannel.v1.KeyExchange"

// Full method names, as seen by interceptors and in access logs.
const (
	BeginMethod    = "/" + KeyExchangeServiceName + "/Begin"
	CompleteMethod = "/" + KeyExchangeServiceName + "/Complete"
)

// BeginRequest is the empty request of KeyExchange/Begin.
type BeginRequest struct{}

// keyExchangeServer is what keyExchangeServiceDesc dispatches to.
type keyExchangeServer interface {
	Begin(ctx context.Context, req *BeginRequest) (*models.KeyExchangeBeginResponse, error)
	Complete(ctx context.Context, req *models.KeyExchangeCompleteRequest) (*models.KeyExchangeCompleteResponse, error)
}

var keyExchangeServiceDesc = grpc.ServiceDesc{
	ServiceName: KeyExchangeServiceName,
	HandlerType: (*keyExchangeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Begin", Handler: beginHandler},
		{MethodName: "Complete", Handler: completeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stegochannel/v1/key_exchange",
}

// Begin opens a key exchange session.
func (h *Handler) Begin(ctx context.Context, _ *BeginRequest) (*models.KeyExchangeBeginResponse, error) {
	resp, err := h.services.KeyExchangeService.Begin(ctx)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.Begin", err)
	}
	return &resp, nil
}

// Complete finishes the session named in req with the client's public key.
func (h *Handler) Complete(ctx context.Context, req *models.KeyExchangeCompleteRequest) (*models.KeyExchangeCompleteResponse, error) {
	if err := h.validator.Validate(ctx, *req); err != nil {
		return nil, toStatus(ctx, "*Handler.Complete", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
	}

	resp, err := h.services.KeyExchangeService.Complete(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.Complete", err)
	}
	return &resp, nil
}

func beginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(BeginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(keyExchangeServer).Begin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BeginMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(keyExchangeServer).Begin(ctx, req.(*BeginRequest))
	})
}

func completeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.KeyExchangeCompleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(keyExchangeServer).Complete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CompleteMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(keyExchangeServer).Complete(ctx, req.(*models.KeyExchangeCompleteRequest))
	})
}
