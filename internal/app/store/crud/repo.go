// internal/app/store/crud/repo.go
//
// Package crud is the shared MongoDB repository used by every entity store.
// One Repo is instantiated per collection; entity stores add defaults,
// uniqueness rules and entity-specific queries on top of it.
package crud

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no document matches an id, including
	// ids that are not valid ObjectID hex strings.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// ConflictError carries an entity-specific duplicate message and matches
// ErrDuplicate under errors.Is.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Is(target error) bool { return target == ErrDuplicate }

// Document is implemented by *T for every stored model (via models.Meta).
type Document interface {
	GetID() primitive.ObjectID
	Stamp(id primitive.ObjectID, now time.Time)
}

// Config describes one collection.
type Config struct {
	Collection string
	// SortField orders List, Find and Search results newest first.
	SortField string
	// SearchFields are string fields matched case-insensitively by Search.
	SearchFields []string
	// ArraySearchFields are []string fields whose elements are matched.
	ArraySearchFields []string
	// SearchScope is ANDed into every Search query.
	SearchScope bson.M
	// Conflict, if set, is returned instead of ErrDuplicate.
	Conflict error
}

// Repo implements create/get/list/update/delete/search for one collection.
type Repo[T any, PT interface {
	*T
	Document
}] struct {
	c   *mongo.Collection
	cfg Config
}

// New binds a Repo to db.Collection(cfg.Collection).
func New[T any, PT interface {
	*T
	Document
}](db *mongo.Database, cfg Config) *Repo[T, PT] {
	if cfg.SortField == "" {
		cfg.SortField = "created_at"
	}
	return &Repo[T, PT]{c: db.Collection(cfg.Collection), cfg: cfg}
}

// Collection exposes the underlying collection for entity-specific queries.
func (r *Repo[T, PT]) Collection() *mongo.Collection { return r.c }

// now is millisecond precision so values compare equal after a round trip.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// Create stamps id and timestamps on doc, inserts it and returns the
// stored document.
func (r *Repo[T, PT]) Create(ctx context.Context, doc PT) (PT, error) {
	doc.Stamp(primitive.NewObjectID(), now())
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return r.FindOne(ctx, bson.M{"_id": doc.GetID()})
}

// GetByID loads a document by hex id.
func (r *Repo[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.FindOne(ctx, bson.M{"_id": oid})
}

// FindOne returns the first document matching filter.
func (r *Repo[T, PT]) FindOne(ctx context.Context, filter bson.M) (PT, error) {
	var out T
	if err := r.c.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return PT(&out), nil
}

// List returns documents matching f, newest first. A nil filter lists all.
func (r *Repo[T, PT]) List(ctx context.Context, f Filter) ([]T, error) {
	q := bson.M{}
	if f != nil {
		q = f.Query()
	}
	return r.Find(ctx, q)
}

// Find runs a raw query with the collection's sort. Never returns nil.
func (r *Repo[T, PT]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: r.cfg.SortField, Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Update applies the non-nil fields of patch with $set and returns the
// updated document. updated_at always moves strictly forward.
func (r *Repo[T, PT]) Update(ctx context.Context, id string, patch any) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set, err := toSet(patch)
	if err != nil {
		return nil, err
	}
	delete(set, "_id")
	delete(set, "created_at")

	var prev struct {
		UpdatedAt time.Time `bson:"updated_at"`
	}
	proj := options.FindOne().SetProjection(bson.M{"updated_at": 1})
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&prev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ts := now()
	if !ts.After(prev.UpdatedAt) {
		ts = prev.UpdatedAt.Add(time.Millisecond)
	}
	set["updated_at"] = ts

	var out T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, r.mapWriteErr(err)
	}
	return PT(&out), nil
}

// Delete removes a document and reports whether exactly one was removed.
func (r *Repo[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// Search matches term case-insensitively against the configured fields.
func (r *Repo[T, PT]) Search(ctx context.Context, term string) ([]T, error) {
	return r.Find(ctx, r.SearchQuery(term))
}

// Count counts documents matching filter.
func (r *Repo[T, PT]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.c.CountDocuments(ctx, filter)
}

// Distinct returns the distinct non-empty string values of field.
func (r *Repo[T, PT]) Distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	if filter == nil {
		filter = bson.M{}
	}
	vals, err := r.c.Distinct(ctx, field, filter)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *Repo[T, PT]) mapWriteErr(err error) error {
	if wafflemongo.IsDup(err) {
		if r.cfg.Conflict != nil {
			return r.cfg.Conflict
		}
		return ErrDuplicate
	}
	return err
}

// toSet flattens a patch struct into a $set document. Fields tagged
// omitempty and left nil are absent.
func toSet(patch any) (bson.M, error) {
	switch p := patch.(type) {
	case nil:
		return bson.M{}, nil
	case bson.M:
		out := make(bson.M, len(p))
		for k, v := range p {
			out[k] = v
		}
		return out, nil
	}
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
