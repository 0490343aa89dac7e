// internal/app/features/projects/edit.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// HandleEdit handles PUT /api/projects/{id}. Only fields present in the
// body are changed.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectPatch
	if err := jsonutil.Decode(w, r, &patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "update project")
		return
	}
	if err := inputval.Validate(patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "update project")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Projects.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "update project")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"project": p})
}
