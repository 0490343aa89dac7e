// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/users (?search=… or ?role=…&status=…&department=…).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		list []models.User
		err  error
	)
	if q := query.Search(r, "search"); q != "" {
		list, err = h.Users.Search(ctx, q)
	} else {
		list, err = h.Users.List(ctx, userstore.Filter{
			Role:       query.Get(r, "role"),
			Status:     query.Get(r, "status"),
			Department: query.Get(r, "department"),
		})
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, "Failed to fetch users")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"users": list})
}
