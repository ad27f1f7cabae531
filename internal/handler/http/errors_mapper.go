package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stego-channel/internal/carrier"
	"github.com/MKhiriev/go-stego-channel/internal/crypto"
	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order: several sentinels wrap others, e.g. a
// malformed frame wraps the codec error that revealed it.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{models.ErrTokenWithoutSession, http.StatusUnauthorized},
	{service.ErrNoSecretProvided, http.StatusUnauthorized},
	{crypto.ErrAuthenticationFailed, http.StatusUnauthorized},

	{carrier.ErrUnsupportedCarrierEncoding, http.StatusUnsupportedMediaType},

	{crypto.ErrMalformedFrame, http.StatusUnprocessableEntity},
	{crypto.ErrUnsupportedFormatVersion, http.StatusUnprocessableEntity},
	{carrier.ErrInsufficientCapacity, http.StatusUnprocessableEntity},
	{carrier.ErrMissingData, http.StatusUnprocessableEntity},

	{carrier.ErrInvalidBitsPerUnit, http.StatusBadRequest},
	{carrier.ErrUnknownKind, http.StatusBadRequest},
	{carrier.ErrInvalidShape, http.StatusBadRequest},
	{crypto.ErrWeakParameters, http.StatusBadRequest},
	{keyexchange.ErrInvalidRemoteKey, http.StatusBadRequest},

	{keyexchange.ErrSessionNotFound, http.StatusNotFound},
	{store.ErrOperationNotFound, http.StatusNotFound},
	{keyexchange.ErrSessionExpired, http.StatusGone},
	{keyexchange.ErrSessionAlreadyComplete, http.StatusConflict},
	{keyexchange.ErrInvalidTransition, http.StatusConflict},
	{keyexchange.ErrSessionFailed, http.StatusConflict},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the matching status. Server
// errors never leak their text to the caller.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
