// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"

	projectstore "github.com/dalemusser/researchsite/internal/app/store/projects"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/projects.
//
//	?search=…                                   free-text search (wins over filters)
//	?status=…&priority=…&department=…&teamLead=… equality filters
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		list []models.Project
		err  error
	)
	if q := query.Search(r, "search"); q != "" {
		list, err = h.Projects.Search(ctx, q)
	} else {
		list, err = h.Projects.List(ctx, projectstore.Filter{
			Status:     query.Get(r, "status"),
			Priority:   query.Get(r, "priority"),
			Department: query.Get(r, "department"),
			TeamLead:   query.Get(r, "teamLead"),
		})
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects failed", err, "Failed to fetch projects")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"projects": list})
}

// ServeStats handles GET /api/projects/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Projects.Stats(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "project stats failed", err, "Failed to fetch project stats")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"stats": st})
}
