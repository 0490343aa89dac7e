// internal/app/features/users/user.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/authz"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/users.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "create user")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "create user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, req.user(), req.Password)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "User", "create user")
		return
	}
	h.Log.Info("user created", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	jsonutil.Write(w, http.StatusCreated, map[string]any{"user": u})
}

// ServeView handles GET /api/users/{id}. Members may only read themselves.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !authz.CanViewUser(r, id) {
		jsonutil.Error(w, http.StatusForbidden, "Admin access required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "User", "fetch user")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"user": u})
}

// HandleEdit handles PUT /api/users/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "update user")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "update user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	u, err := h.Users.Update(ctx, id, req.UserPatch)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "User", "update user")
		return
	}
	if req.Password != nil && *req.Password != "" {
		if err := h.Users.SetPassword(ctx, id, *req.Password); err != nil {
			h.ErrLog.Respond(w, r, err, "User", "update user")
			return
		}
		// SetPassword moved updated_at again.
		if u, err = h.Users.GetByID(ctx, id); err != nil {
			h.ErrLog.Respond(w, r, err, "User", "update user")
			return
		}
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"user": u})
}

// HandleDelete handles DELETE /api/users/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")
	ok, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete user failed", err, "Failed to delete user")
		return
	}
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "User not found")
		return
	}
	h.Log.Info("user deleted", zap.String("user_id", id))
	jsonutil.Message(w, "User deleted successfully")
}
