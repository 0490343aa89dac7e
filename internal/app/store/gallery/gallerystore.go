package gallerystore

import (
	"context"
	"sort"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/normalize"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Category string
	Status   string
}

func (f Filter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "category", f.Category)
	crud.Eq(q, "status", normalize.Status(f.Status))
	return q
}

// Published returns the public listing filter, optionally for one category.
func Published(category string) Filter {
	return Filter{Status: models.StatusPublished, Category: category}
}

type Store struct {
	*crud.Repo[models.GalleryItem, *models.GalleryItem]
}

func New(db *mongo.Database) *Store {
	return &Store{Repo: crud.New[models.GalleryItem](db, crud.Config{
		Collection:        "gallery",
		SortField:         "created_at",
		SearchFields:      []string{"title", "description", "category"},
		ArraySearchFields: []string{"tags"},
	})}
}

// Create inserts g with status draft unless given. uploadedBy is recorded
// when known.
func (s *Store) Create(ctx context.Context, g models.GalleryItem, uploadedBy *primitive.ObjectID) (*models.GalleryItem, error) {
	g.Category = normalize.Name(g.Category)
	g.Status = normalize.Status(g.Status)
	if g.Status == "" {
		g.Status = models.StatusDraft
	}
	g.Tags = normalize.List(g.Tags)
	g.UploadedBy = uploadedBy
	return s.Repo.Create(ctx, &g)
}

func (s *Store) Update(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	if patch.Category != nil {
		v := normalize.Name(*patch.Category)
		patch.Category = &v
	}
	if patch.Tags != nil {
		v := normalize.List(*patch.Tags)
		patch.Tags = &v
	}
	return s.Repo.Update(ctx, id, patch)
}

// Categories returns the sorted distinct categories of published items.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.Distinct(ctx, "category", bson.M{"status": models.StatusPublished})
	if err != nil {
		return nil, err
	}
	sort.Strings(cats)
	return cats, nil
}
