// internal/app/features/userinfo/handler.go
package userinfo

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the signed-in user's own record.
type Handler struct {
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeMe handles GET /api/auth/me.
//
// Clients rebuild their session state from this response on load. The
// record is read fresh so role changes show up without a new login.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id.UserID)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "User", "fetch user")
		return
	}
	jsonutil.Write(w, http.StatusOK, map[string]any{"user": u})
}
