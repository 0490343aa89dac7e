// internal/app/features/content/routes.go
package content

import (
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the content API under /api/content. Reads are public;
// writes need a signed-in user.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)

	r.Group(func(pr chi.Router) {
		pr.Use(mgr.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
