package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stego-channel/internal/mock"
	"github.com/MKhiriev/go-stego-channel/internal/validators"
	"github.com/MKhiriev/go-stego-channel/models"
)

func newTestValidationSvc(t *testing.T) (StegoService, *mock.MockStegoService) {
	t.Helper()
	inner := mock.NewMockStegoService(gomock.NewController(t))
	return NewStegoValidationService().Wrap(inner), inner
}

func TestStegoValidationService_PassesValidRequests(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	hide := models.HideRequest{Kind: "text", Carrier: []byte("cover"), Message: "m", Password: "pw"}
	inner.EXPECT().Hide(ctx, hide).Return(models.HideResponse{Format: "text"}, nil)
	reveal := models.RevealRequest{Kind: "image", Carrier: []byte{1}}
	inner.EXPECT().Reveal(ctx, reveal).Return(models.RevealResponse{Message: "m"}, nil)
	capacity := models.CapacityRequest{Kind: "audio", Carrier: []byte{1}, MessageLength: 4}
	inner.EXPECT().Capacity(ctx, capacity).Return(models.CapacityResponse{Fits: true}, nil)
	analyze := models.AnalyzeRequest{Kind: "text", Carrier: []byte("x")}
	inner.EXPECT().Analyze(ctx, analyze).Return(models.AnalyzeResponse{Kind: "text"}, nil)

	h, err := svc.Hide(ctx, hide)
	require.NoError(t, err)
	assert.Equal(t, "text", h.Format)

	r, err := svc.Reveal(ctx, reveal)
	require.NoError(t, err)
	assert.Equal(t, "m", r.Message)

	c, err := svc.Capacity(ctx, capacity)
	require.NoError(t, err)
	assert.True(t, c.Fits)

	a, err := svc.Analyze(ctx, analyze)
	require.NoError(t, err)
	assert.Equal(t, "text", a.Kind)
}

func TestStegoValidationService_RejectsBeforeInner(t *testing.T) {
	// inner has no expectations: any call fails the test
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	_, err := svc.Hide(ctx, models.HideRequest{Kind: "text", Carrier: []byte("cover")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyMessage)

	_, err = svc.Reveal(ctx, models.RevealRequest{Kind: "video", Carrier: []byte{1}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidKind)

	_, err = svc.Capacity(ctx, models.CapacityRequest{Kind: "text", Carrier: []byte{1}, MessageLength: -1})
	assert.ErrorIs(t, err, validators.ErrInvalidMessageLength)

	_, err = svc.Analyze(ctx, models.AnalyzeRequest{Kind: "text"})
	assert.ErrorIs(t, err, validators.ErrEmptyCarrier)
}
