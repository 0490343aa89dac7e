// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// Routes mounts the project API under /api/projects. Projects are public;
// a signed-in caller is recorded as the creator.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// Registered before /{id} so "stats" is never taken as an id.
	r.Get("/stats", h.ServeStats)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleEdit)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
