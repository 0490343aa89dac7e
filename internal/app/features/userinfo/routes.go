// internal/app/features/userinfo/routes.go
package userinfo

import (
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves GET / (mounted at /api/auth/me) to signed-in users.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(mgr.RequireSignedIn)
		pr.Get("/", h.ServeMe)
	})
	return r
}
