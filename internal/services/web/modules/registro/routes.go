package registro

import "net/http"

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /registro", h.handleShow)
	mux.HandleFunc("POST /registro/category", h.handleCategory)
	mux.HandleFunc("POST /registro/subcategory", h.handleSubcategory)
	mux.HandleFunc("POST /registro/personal", h.handlePersonal)
	mux.HandleFunc("POST /registro/additional", h.handleAdditional)
	mux.HandleFunc("POST /registro/consent", h.handleConsent)
	mux.HandleFunc("POST /registro/back", h.handleBack)
	mux.HandleFunc("POST /registro/complete", h.handleComplete)
}
