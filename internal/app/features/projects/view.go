// internal/app/features/projects/view.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /api/projects/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Projects.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "fetch project")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"project": p})
}
