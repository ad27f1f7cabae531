package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

func (h *Handler) beginKeyExchange(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.KeyExchangeService.Begin(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.beginKeyExchange", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) completeKeyExchange(w http.ResponseWriter, r *http.Request) {
	var req models.KeyExchangeCompleteRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.completeKeyExchange", err)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeServiceError(w, r, "*Handler.completeKeyExchange", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	resp, err := h.services.KeyExchangeService.Complete(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.completeKeyExchange", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
