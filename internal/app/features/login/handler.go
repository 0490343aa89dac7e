// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	"github.com/dalemusser/researchsite/internal/app/store/crud"
	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB      *mongo.Database
	Users   *userstore.Store
	AuthMgr *auth.Manager
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, authMgr *auth.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Users:   userstore.New(db),
		AuthMgr: authMgr,
		ErrLog:  errLog,
		Log:     logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// HandleLogin handles POST /api/auth/login.
//
// On success the token is set as an HttpOnly cookie and also returned in
// the body for Bearer clients. Unknown email, wrong password and inactive
// account all produce the same 401.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "log in")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "User", "log in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, crud.ErrNotFound) {
		h.Log.Info("login failed", zap.String("email", req.Email))
		jsonutil.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "authenticate failed", err, "Failed to log in")
		return
	}

	token, exp, err := h.AuthMgr.Issue(auth.Identity{
		UserID: u.ID.Hex(),
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "issue token failed", err, "Failed to log in")
		return
	}
	h.AuthMgr.SetCookie(w, token, exp)

	h.Log.Info("user logged in", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	jsonutil.Write(w, http.StatusOK, loginResponse{User: u, Token: token})
}
