package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/mock"
	"github.com/MKhiriev/go-stego-channel/internal/service"
)

type testServices struct {
	stego       *mock.MockStegoService
	history     *mock.MockHistoryService
	keyExchange *mock.MockKeyExchangeService
	appInfo     *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services together with its
// router.
func newTestHandler(t *testing.T) (*Handler, http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		stego:       mock.NewMockStegoService(ctrl),
		history:     mock.NewMockHistoryService(ctrl),
		keyExchange: mock.NewMockKeyExchangeService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		StegoService:       m.stego,
		HistoryService:     m.history,
		KeyExchangeService: m.keyExchange,
		AppInfoService:     m.appInfo,
	}, logger.Nop())

	return h, h.Init(), m
}

func serve(router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.validator)
	assert.Equal(t, int64(DefaultMaxBodyBytes), h.maxBodyBytes)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
