package perfil

import "net/http"

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /perfil", h.handleOwn)
	mux.HandleFunc("GET /perfil/editar", h.handleEditForm)
	mux.HandleFunc("POST /perfil/editar", h.handleEdit)
	mux.HandleFunc("POST /perfil/imagen", h.handleImage)
	mux.HandleFunc("GET /perfil/{username}", h.handlePublic)
}
