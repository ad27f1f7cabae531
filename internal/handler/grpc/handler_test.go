package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/mock"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/models"
)

// startServer serves h over an in-memory listener and returns a client
// connection to it.
func startServer(t *testing.T, h *Handler) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newTestHandler(t *testing.T) (*Handler, *mock.MockKeyExchangeService) {
	t.Helper()
	keyExchange := mock.NewMockKeyExchangeService(gomock.NewController(t))
	return NewHandler(&service.Services{KeyExchangeService: keyExchange}, logger.Nop()), keyExchange
}

func invoke(ctx context.Context, conn *grpc.ClientConn, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append(opts, grpc.CallContentSubtype(CodecName))
	return conn.Invoke(ctx, method, in, out, opts...)
}

func TestKeyExchange_BeginAndComplete(t *testing.T) {
	h, keyExchange := newTestHandler(t)
	conn := startServer(t, h)
	ctx := context.Background()

	expires := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	keyExchange.EXPECT().Begin(gomock.Any()).Return(models.KeyExchangeBeginResponse{
		SessionID: "s1", PublicKey: []byte{4, 1, 2}, ExpiresAt: expires,
	}, nil)
	keyExchange.EXPECT().Complete(gomock.Any(), models.KeyExchangeCompleteRequest{SessionID: "s1", PublicKey: []byte{4, 7}}).
		Return(models.KeyExchangeCompleteResponse{SessionID: "s1", Token: "jwt", ExpiresAt: expires}, nil)

	var begin models.KeyExchangeBeginResponse
	var header metadata.MD
	require.NoError(t, invoke(ctx, conn, BeginMethod, &BeginRequest{}, &begin, grpc.Header(&header)))
	assert.Equal(t, "s1", begin.SessionID)
	assert.Equal(t, []byte{4, 1, 2}, begin.PublicKey)
	assert.True(t, expires.Equal(begin.ExpiresAt))
	assert.NotEmpty(t, header.Get(traceIDKey))

	var complete models.KeyExchangeCompleteResponse
	require.NoError(t, invoke(ctx, conn, CompleteMethod,
		&models.KeyExchangeCompleteRequest{SessionID: "s1", PublicKey: []byte{4, 7}}, &complete))
	assert.Equal(t, "jwt", complete.Token)
}

func TestKeyExchange_TraceIDEchoed(t *testing.T) {
	h, keyExchange := newTestHandler(t)
	conn := startServer(t, h)
	keyExchange.EXPECT().Begin(gomock.Any()).Return(models.KeyExchangeBeginResponse{SessionID: "s1"}, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-7")
	var header metadata.MD
	var out models.KeyExchangeBeginResponse
	require.NoError(t, invoke(ctx, conn, BeginMethod, &BeginRequest{}, &out, grpc.Header(&header)))

	assert.Equal(t, []string{"trace-7"}, header.Get(traceIDKey))
}

func TestKeyExchange_CompleteValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	conn := startServer(t, h)

	var out models.KeyExchangeCompleteResponse
	err := invoke(context.Background(), conn, CompleteMethod, &models.KeyExchangeCompleteRequest{PublicKey: []byte{4}}, &out)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestKeyExchange_ErrorCodes(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{keyexchange.ErrSessionNotFound, codes.NotFound},
		{keyexchange.ErrSessionExpired, codes.FailedPrecondition},
		{keyexchange.ErrSessionAlreadyComplete, codes.AlreadyExists},
		{keyexchange.ErrInvalidRemoteKey, codes.InvalidArgument},
		{errors.New("registry on fire"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h, keyExchange := newTestHandler(t)
			conn := startServer(t, h)
			keyExchange.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(models.KeyExchangeCompleteResponse{}, tt.err)

			var out models.KeyExchangeCompleteResponse
			err := invoke(context.Background(), conn, CompleteMethod,
				&models.KeyExchangeCompleteRequest{SessionID: "s1", PublicKey: []byte{4}}, &out)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			if tt.want == codes.Internal {
				assert.Equal(t, "internal error", st.Message())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	conn := startServer(t, h)
	client := healthpb.NewHealthClient(conn)
	ctx := context.Background()

	for _, name := range []string{"", KeyExchangeServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	h.Shutdown()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, "json", c.Name())

	raw, err := c.Marshal(models.KeyExchangeCompleteRequest{SessionID: "s", PublicKey: []byte{1}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"s","public_key":"AQ=="}`, string(raw))

	var back models.KeyExchangeCompleteRequest
	require.NoError(t, c.Unmarshal(raw, &back))
	assert.Equal(t, "s", back.SessionID)

	assert.Error(t, c.Unmarshal([]byte("{"), &back))
}
