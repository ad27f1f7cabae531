package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
)

// withSession resolves an optional session token.
//
// Requests without an "Authorization" header pass through unchanged; they
// must carry a password. A bearer token is validated via
// [service.KeyExchangeService.ParseToken] and the session it names is stored
// in the request context with [utils.WithSessionID], where the stego service
// picks up the key exchange secret.
//
// A header that is present but malformed, expired or signed by someone else
// is rejected with 401 Unauthorized.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withSession").Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.KeyExchangeService.ParseToken(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, "*Handler.withSession", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionID(ctx, token.SessionID)))
	})
}
