package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Post("/api/key-exchange", h.beginKeyExchange)
	router.Post("/api/key-exchange/complete", h.completeKeyExchange)

	router.Post("/api/stego/capacity", h.capacity)
	router.Post("/api/stego/analyze", h.analyze)

	// routes that may spend a key exchange session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/api/stego/hide", h.hide)
		r.Post("/api/stego/reveal", h.reveal)
	})

	router.Get("/api/history", h.listHistory)
	router.Delete("/api/history", h.clearHistory)
	router.Get("/api/history/{id}", h.getHistory)
	router.Delete("/api/history/{id}", h.deleteHistory)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
