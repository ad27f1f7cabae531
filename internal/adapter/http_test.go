// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/models"
)

// newTestAdapter points an httpServerAdapter at the test server
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://stego.example.com/", want: "https://stego.example.com"},
		{in: "  http://10.0.0.1:80  ", want: "http://10.0.0.1:80"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Key exchange ────────────────────────────────────────────────────────────

func TestBeginKeyExchange_Success(t *testing.T) {
	expires := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/key-exchange", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.KeyExchangeBeginResponse{
			SessionID: "sess-1",
			PublicKey: []byte{4, 1, 2, 3},
			ExpiresAt: expires,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).BeginKeyExchange(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, []byte{4, 1, 2, 3}, got.PublicKey)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestCompleteKeyExchange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/key-exchange/complete", r.URL.Path)

		var req models.KeyExchangeCompleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-1", req.SessionID)
		assert.Equal(t, []byte{4, 9}, req.PublicKey)

		writeJSON(t, w, http.StatusOK, models.KeyExchangeCompleteResponse{SessionID: "sess-1", Token: "jwt"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CompleteKeyExchange(context.Background(),
		models.KeyExchangeCompleteRequest{SessionID: "sess-1", PublicKey: []byte{4, 9}})

	require.NoError(t, err)
	assert.Equal(t, "jwt", got.Token)
}

func TestCompleteKeyExchange_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusGone, ErrGone},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"error": "session problem"})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).CompleteKeyExchange(context.Background(), models.KeyExchangeCompleteRequest{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "session problem")
		})
	}
}

// ── Hide / Reveal ───────────────────────────────────────────────────────────

func TestHide_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stego/hide", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req models.HideRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "text", req.Kind)
		assert.Equal(t, []byte("cover"), req.Carrier)
		assert.Empty(t, req.Secret, "raw secrets never leave the client")

		writeJSON(t, w, http.StatusOK, models.HideResponse{Artifact: []byte("artifact"), Format: "text", Fingerprint: "fp"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Hide(context.Background(),
		models.HideRequest{Kind: "text", Carrier: []byte("cover"), Message: "m", Secret: []byte("local")}, "session-token")

	require.NoError(t, err)
	assert.Equal(t, []byte("artifact"), got.Artifact)
	assert.Equal(t, "fp", got.Fingerprint)
}

func TestReveal_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.RevealResponse{Message: "HI"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Reveal(context.Background(), models.RevealRequest{Kind: "image", Password: "pw"}, "  ")

	require.NoError(t, err)
	assert.Equal(t, "HI", got.Message)
}

func TestReveal_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "authentication failed"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Reveal(context.Background(), models.RevealRequest{}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHide_UnprocessableAndUnsupported(t *testing.T) {
	for status, want := range map[int]error{
		http.StatusUnprocessableEntity:  ErrUnprocessable,
		http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestAdapter(t, srv.URL).Hide(context.Background(), models.HideRequest{}, "")
		assert.ErrorIs(t, err, want)
		srv.Close()
	}
}

// ── Version / transport ─────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestRequest_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).BeginKeyExchange(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin key exchange request")
}

func TestRequest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.KeyExchangeBeginResponse{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).BeginKeyExchange(ctx)
	assert.Error(t, err)
}
