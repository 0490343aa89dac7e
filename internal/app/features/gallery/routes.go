// internal/app/features/gallery/routes.go
package gallery

import (
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/categories", h.ServeCategories)
	r.Get("/{id}", h.ServeView)

	r.Group(func(pr chi.Router) {
		pr.Use(mgr.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
