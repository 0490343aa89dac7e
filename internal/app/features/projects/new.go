// internal/app/features/projects/new.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/authz"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
)

// HandleCreate handles POST /api/projects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "create project")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "Project", "create project")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Projects.Create(ctx, req.project(), authz.ActorID(r))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create project failed", err, "Failed to create project")
		return
	}
	jsonutil.Write(w, http.StatusCreated, map[string]any{"project": p})
}
