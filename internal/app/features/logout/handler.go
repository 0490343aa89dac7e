// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

type Handler struct {
	Log     *zap.Logger
	AuthMgr *auth.Manager
}

func NewHandler(authMgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		AuthMgr: authMgr,
	}
}

// HandleLogout handles POST /api/auth/logout. The cookie is expired even
// when the caller was not signed in.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user logged out", zap.String("user_id", u.UserID))
	}
	h.AuthMgr.ClearCookie(w)
	jsonutil.Message(w, "Logged out successfully")
}
