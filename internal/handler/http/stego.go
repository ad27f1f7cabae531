// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	var req models.HideRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.hide", err)
		return
	}

	resp, err := h.services.StegoService.Hide(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.hide", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.hide").
		Str("kind", req.Kind).
		Str("fingerprint", resp.Fingerprint).
		Msg("message hidden")
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	var req models.RevealRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.reveal", err)
		return
	}

	resp, err := h.services.StegoService.Reveal(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.reveal", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) capacity(w http.ResponseWriter, r *http.Request) {
	var req models.CapacityRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.capacity", err)
		return
	}

	resp, err := h.services.StegoService.Capacity(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.capacity", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.analyze", err)
		return
	}

	resp, err := h.services.StegoService.Analyze(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.analyze", err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
