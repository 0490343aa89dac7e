// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user API under /api/users. Everything is admin-only
// except reading a single user, which members may do for themselves.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(mgr.RequireSignedIn)
		pr.Get("/{id}", h.ServeView)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(mgr.RequireAdmin)
		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
