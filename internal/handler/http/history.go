package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/utils"
	"github.com/MKhiriev/go-stego-channel/models"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	filter, err := h.historyFilter(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listHistory", err)
		return
	}

	ops, err := h.services.HistoryService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.listHistory", err)
		return
	}
	if ops == nil {
		ops = []models.Operation{}
	}

	_, _ = utils.WriteJSON(w, models.HistoryResponse{Operations: ops, Length: len(ops)}, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	op, err := h.services.HistoryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getHistory", err)
		return
	}

	_, _ = utils.WriteJSON(w, op, http.StatusOK)
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteHistory", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	filter, err := h.historyFilter(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.clearHistory", err)
		return
	}

	n, err := h.services.HistoryService.Clear(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.clearHistory", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ClearResponse{Deleted: n}, http.StatusOK)
}

// historyFilter reads operation, kind, success, limit and offset from the
// query string.
func (h *Handler) historyFilter(r *http.Request) (models.HistoryFilter, error) {
	q := r.URL.Query()
	filter := models.HistoryFilter{
		Type:        models.OperationType(q.Get("operation")),
		CarrierKind: q.Get("kind"),
	}

	if raw := q.Get("success"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			return models.HistoryFilter{}, fmt.Errorf("%w: success=%q", ErrInvalidQuery, raw)
		}
		filter.Success = &success
	}

	var err error
	if filter.Limit, err = uintParam(q, "limit"); err != nil {
		return models.HistoryFilter{}, err
	}
	if filter.Offset, err = uintParam(q, "offset"); err != nil {
		return models.HistoryFilter{}, err
	}

	if err := h.validator.Validate(r.Context(), filter); err != nil {
		return models.HistoryFilter{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return filter, nil
}

func uintParam(q url.Values, name string) (uint64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
	}
	return v, nil
}
