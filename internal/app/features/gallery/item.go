// internal/app/features/gallery/item.go
package gallery

import (
	"context"
	"net/http"

	"github.com/dalemusser/researchsite/internal/app/system/authz"
	"github.com/dalemusser/researchsite/internal/app/system/inputval"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type createRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	ImageURL     string   `json:"imageUrl" validate:"required"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags         []string `json:"tags"`
}

// HandleCreate handles POST /api/gallery. The caller is recorded as uploader.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "create gallery item")
		return
	}
	if err := inputval.Validate(req); err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "create gallery item")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Gallery.Create(ctx, models.GalleryItem{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		Status:       req.Status,
		Tags:         req.Tags,
	}, authz.ActorID(r))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create gallery item failed", err, "Failed to create gallery item")
		return
	}
	jsonutil.Write(w, http.StatusCreated, g)
}

// ServeView handles GET /api/gallery/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Gallery.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "fetch gallery item")
		return
	}
	jsonutil.Write(w, http.StatusOK, g)
}

// HandleEdit handles PUT /api/gallery/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var patch models.GalleryItemPatch
	if err := jsonutil.Decode(w, r, &patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "update gallery item")
		return
	}
	if err := inputval.Validate(patch); err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "update gallery item")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Gallery.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.ErrLog.Respond(w, r, err, "Gallery item", "update gallery item")
		return
	}
	jsonutil.Write(w, http.StatusOK, g)
}

// HandleDelete handles DELETE /api/gallery/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Gallery.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete gallery item failed", err, "Failed to delete gallery item")
		return
	}
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Gallery item not found")
		return
	}
	jsonutil.Message(w, "Gallery item deleted successfully")
}
