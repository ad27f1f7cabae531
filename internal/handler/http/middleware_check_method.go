// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stego-channel/internal/utils"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router. A known
// path requested with a method it does not serve answers 404 Not Found
// rather than chi's 405, so a probe learns nothing about which routes exist.
//
// Routes are looked up by exact pattern; when the method is in fact
// registered for the pattern the request is handed back to router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
