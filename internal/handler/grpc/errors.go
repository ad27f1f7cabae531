package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
)

type errorCode struct {
	err  error
	code codes.Code
}

var errorCodes = []errorCode{
	{service.ErrInvalidDataProvided, codes.InvalidArgument},
	{keyexchange.ErrInvalidRemoteKey, codes.InvalidArgument},
	{keyexchange.ErrSessionNotFound, codes.NotFound},
	{keyexchange.ErrSessionExpired, codes.FailedPrecondition},
	{keyexchange.ErrSessionAlreadyComplete, codes.AlreadyExists},
	{keyexchange.ErrInvalidTransition, codes.FailedPrecondition},
	{keyexchange.ErrSessionFailed, codes.FailedPrecondition},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
	{context.Canceled, codes.Canceled},
}

func codeFromError(err error) codes.Code {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return codes.Internal
}

// toStatus logs err and converts it into a gRPC status. Internal errors
// carry no detail.
func toStatus(ctx context.Context, funcName string, err error) error {
	code := codeFromError(err)

	log := logger.FromContext(ctx)
	if code == codes.Internal {
		log.Err(err).Str("func", funcName).Msg("rpc failed")
		return status.Error(code, "internal error")
	}

	log.Warn().Err(err).Str("func", funcName).Str("code", code.String()).Send()
	return status.Error(code, err.Error())
}
