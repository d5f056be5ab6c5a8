package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A known path requested with an unsupported method
// answers 404 like an unknown path, so route probing learns nothing.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withRequestLogger, withAccessLog, withGunzipRequest, withCompressedJSON)
	router.MethodNotAllowed(http.NotFound)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/notes", func(r chi.Router) {
		r.Use(h.withOwner)

		r.Post("/", h.createNote)
		r.Get("/", h.listNotes)
		r.Get("/{noteID}", h.getNote)
		r.Put("/{noteID}", h.updateNote)
		r.Delete("/{noteID}", h.deleteNote)
	})

	return router
}
