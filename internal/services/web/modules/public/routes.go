package public

import "net/http"

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /{$}", h.handleLanding)
	mux.HandleFunc("GET /{slug}", h.handleMarketing)
}
