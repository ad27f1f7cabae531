package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
)

const (
	// traceIDKey is the metadata key shared with the HTTP X-Trace-ID header.
	traceIDKey = "x-trace-id"

	maxTraceIDLength = 128
)

// withTraceID attaches a child logger carrying the caller's trace id, or a
// fresh one, to the call context and echoes it in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(traceIDKey); len(v) > 0 {
			traceID = v[0]
		}
	}
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

// withLogging writes one access log line per call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	code := status.Code(err)
	level := zerolog.InfoLevel
	if code == codes.Internal || code == codes.Unknown {
		level = zerolog.ErrorLevel
	}

	logger.FromContext(ctx).WithLevel(level).
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
