// internal/app/features/content/handler.go
package content

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	contentstore "github.com/dalemusser/researchsite/internal/app/store/content"
	"github.com/dalemusser/researchsite/internal/app/system/authz"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB      *mongo.Database
	Content *contentstore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Content: contentstore.New(db),
		ErrLog:  errLog,
		Log:     logger,
	}
}

type createRequest struct {
	Title       string      `json:"title" validate:"required"`
	Type        string      `json:"type" validate:"required,oneof=project publication research-area achievement"`
	Status      string      `json:"status" validate:"omitempty,oneof=draft published"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	PublishDate models.Date `json:"publishDate"`
}

// listFilter applies search > published > structured precedence.
// It returns the search term, or "" with the filter to list by.
func listFilter(r *http.Request) (string, contentstore.Filter) {
	if q := query.Search(r, "search"); q != "" {
		return q, contentstore.Filter{}
	}
	if query.Get(r, "published") == "true" {
		return "", contentstore.Published(query.Get(r, "type"))
	}
	return "", contentstore.Filter{
		Type:     query.Get(r, "type"),
		Status:   query.Get(r, "status"),
		Category: query.Get(r, "category"),
		Author:   query.Get(r, "author"),
	}
}

// ServeList handles GET /api/content.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		list []models.Content
		err  error
	)
	if q, f := listFilter(r); q != "" {
		list, err = h.Content.Search(ctx, q)
	} else {
		list, err = h.Content.List(ctx, f)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list content failed", err, "Failed to fetch content")
		return
	}
	jsonutil.Write(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/content.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "create content")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "create content")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Content.Create(ctx, models.Content{
		Title:       req.Title,
		Type:        req.Type,
		Status:      req.Status,
		Body:        req.Content,
		Author:      req.Author,
		Category:    req.Category,
		Tags:        req.Tags,
		PublishDate: req.PublishDate,
	}, authz.ActorID(r))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create content failed", err, "Failed to create content")
		return
	}
	jsonutil.Write(w, http.StatusCreated, c)
}

// ServeView handles GET /api/content/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Content.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "fetch content")
		return
	}
	jsonutil.Write(w, http.StatusOK, c)
}

// HandleEdit handles PUT /api/content/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var patch models.ContentPatch
	if err := jsonutil.Decode(w, r, &patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "update content")
		return
	}
	if err := inputval.Validate(patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "update content")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Content.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Content", "update content")
		return
	}
	jsonutil.Write(w, http.StatusOK, c)
}

// HandleDelete handles DELETE /api/content/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Content.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete content failed", err, "Failed to delete content")
		return
	}
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Content not found")
		return
	}
	jsonutil.Message(w, "Content deleted successfully")
}
