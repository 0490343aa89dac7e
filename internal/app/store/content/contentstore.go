package contentstore

import (
	"context"
	"time"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/researchsite/internal/app/system/normalize"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Type     string
	Status   string
	Category string
	Author   string
}

func (f Filter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "type", normalize.Status(f.Type))
	crud.Eq(q, "status", normalize.Status(f.Status))
	crud.Eq(q, "category", f.Category)
	crud.Eq(q, "author", f.Author)
	return q
}

// Published returns the filter used for public listings: published items,
// optionally of one type.
func Published(contentType string) Filter {
	return Filter{Status: models.StatusPublished, Type: contentType}
}

type Store struct {
	*crud.Repo[models.Content, *models.Content]
}

// New returns the content store. Search only ever sees published items.
func New(db *mongo.Database) *Store {
	return &Store{Repo: crud.New[models.Content](db, crud.Config{
		Collection:        "content",
		SortField:         "publish_date",
		SearchFields:      []string{"title", "content", "author"},
		ArraySearchFields: []string{"tags"},
		SearchScope:       bson.M{"status": models.StatusPublished},
	})}
}

func (s *Store) Create(ctx context.Context, c models.Content, actorID *primitive.ObjectID) (*models.Content, error) {
	c.Type = normalize.Status(c.Type)
	c.Status = normalize.Status(c.Status)
	if c.Status == "" {
		c.Status = models.StatusDraft
	}
	if c.PublishDate.IsZero() {
		c.PublishDate = models.NewDate(time.Now())
	}
	c.Body = htmlsanitize.Sanitize(c.Body)
	c.Tags = normalize.List(c.Tags)
	c.CreatedBy = actorID
	return s.Repo.Create(ctx, &c)
}

// Update applies patch, sanitizing a provided body.
func (s *Store) Update(ctx context.Context, id string, patch models.ContentPatch) (*models.Content, error) {
	if patch.Body != nil {
		v := htmlsanitize.Sanitize(*patch.Body)
		patch.Body = &v
	}
	if patch.Tags != nil {
		v := normalize.List(*patch.Tags)
		patch.Tags = &v
	}
	return s.Repo.Update(ctx, id, patch)
}
