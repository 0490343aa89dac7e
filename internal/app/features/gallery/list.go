// internal/app/features/gallery/list.go
package gallery

import (
	"context"
	"net/http"

	gallerystore "github.com/dalemusser/researchsite/internal/app/store/gallery"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/gallery.
//
//	?search=…                   free-text search
//	?published=true&category=…  published items, optionally one category
//	?category=…&status=…        equality filters
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		items []models.GalleryItem
		err   error
	)
	switch q := query.Search(r, "search"); {
	case q != "":
		items, err = h.Gallery.Search(ctx, q)
	case query.Get(r, "published") == "true":
		items, err = h.Gallery.List(ctx, gallerystore.Published(query.Get(r, "category")))
	default:
		items, err = h.Gallery.List(ctx, gallerystore.Filter{
			Category: query.Get(r, "category"),
			Status:   query.Get(r, "status"),
		})
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list gallery failed", err, "Failed to fetch gallery items")
		return
	}
	jsonutil.Write(w, http.StatusOK, items)
}

// ServeCategories handles GET /api/gallery/categories.
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cats, err := h.Gallery.Categories(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "gallery categories failed", err, "Failed to fetch categories")
		return
	}
	jsonutil.Write(w, http.StatusOK, cats)
}
