// internal/app/features/team/handler.go
package team

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	teamstore "github.com/dalemusser/researchsite/internal/app/store/team"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public team page data and its admin writes.
type Handler struct {
	DB     *mongo.Database
	Team   *teamstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Team:   teamstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

type createRequest struct {
	Name           string             `json:"name" validate:"required"`
	Role           string             `json:"role" validate:"required"`
	Specialization string             `json:"specialization"`
	Email          string             `json:"email" validate:"required,email"`
	Bio            string             `json:"bio"`
	ProfileImage   string             `json:"profileImage"`
	Status         string             `json:"status" validate:"omitempty,oneof=active inactive"`
	SocialLinks    models.SocialLinks `json:"socialLinks"`
	Publications   []string           `json:"publications"`
	Achievements   []string           `json:"achievements"`
}

// ServeList handles GET /api/team (?search=… or ?status=…&specialization=…).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		members []models.TeamMember
		err     error
	)
	if q := query.Search(r, "search"); q != "" {
		members, err = h.Team.Search(ctx, q)
	} else {
		members, err = h.Team.List(ctx, teamstore.Filter{
			Status:         query.Get(r, "status"),
			Specialization: query.Get(r, "specialization"),
		})
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list team failed", err, "Failed to fetch team members")
		return
	}
	jsonutil.Write(w, http.StatusOK, members)
}

// HandleCreate handles POST /api/team.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "create team member")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "create team member")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Team.Create(ctx, models.TeamMember{
		Name:           req.Name,
		Role:           req.Role,
		Specialization: req.Specialization,
		Email:          req.Email,
		Bio:            req.Bio,
		ProfileImage:   req.ProfileImage,
		Status:         req.Status,
		SocialLinks:    req.SocialLinks,
		Publications:   req.Publications,
		Achievements:   req.Achievements,
	})
	if err != nil {
		// Duplicate email is a client error; everything else is logged.
		h.ErrLog.Respond(w, r, err, "Team member", "create team member")
		return
	}
	jsonutil.Write(w, http.StatusCreated, m)
}

// ServeView handles GET /api/team/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Team.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "fetch team member")
		return
	}
	jsonutil.Write(w, http.StatusOK, m)
}

// HandleEdit handles PUT /api/team/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var patch models.TeamMemberPatch
	if err := jsonutil.Decode(w, r, &patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "update team member")
		return
	}
	if err := inputval.Validate(patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "update team member")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Team.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Team member", "update team member")
		return
	}
	jsonutil.Write(w, http.StatusOK, m)
}

// HandleDelete handles DELETE /api/team/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Team.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete team member failed", err, "Failed to delete team member")
		return
	}
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Team member not found")
		return
	}
	jsonutil.Message(w, "Team member deleted successfully")
}
