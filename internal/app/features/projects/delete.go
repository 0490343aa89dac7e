// internal/app/features/projects/delete.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete handles DELETE /api/projects/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Projects.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete project failed", err, "Failed to delete project")
		return
	}
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Project not found")
		return
	}
	jsonutil.Message(w, "Project deleted successfully")
}
