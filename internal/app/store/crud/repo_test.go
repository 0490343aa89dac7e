package crud_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/researchsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type widget struct {
	models.Meta `bson:",inline"`
	Name        string   `bson:"name"`
	Status      string   `bson:"status"`
	Note        string   `bson:"note"`
	Tags        []string `bson:"tags"`
}

type widgetPatch struct {
	Name   *string `bson:"name,omitempty"`
	Status *string `bson:"status,omitempty"`
}

type widgetFilter struct {
	Status string
}

func (f widgetFilter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "status", f.Status)
	return q
}

func newRepo(t *testing.T, db *mongo.Database) *crud.Repo[widget, *widget] {
	t.Helper()
	return crud.New[widget](db, crud.Config{
		Collection:        "widgets",
		SearchFields:      []string{"name", "note"},
		ArraySearchFields: []string{"tags"},
	})
}

func strPtr(s string) *string { return &s }

func TestRepo_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := repo.Create(ctx, &widget{Name: "Sprocket", Status: "active"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Fatal("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("timestamps: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.GetByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Sprocket" || got.Status != "active" {
		t.Errorf("got %+v", got)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, id := range []string{"not-an-id", "", primitive.NewObjectID().Hex()} {
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, crud.ErrNotFound) {
			t.Errorf("GetByID(%q): got %v, want ErrNotFound", id, err)
		}
	}
}

func TestRepo_ListNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	empty, err := repo.List(ctx, widgetFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Create(ctx, &widget{Name: name, Status: "active"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	if _, err := repo.Create(ctx, &widget{Name: "d", Status: "retired"}); err != nil {
		t.Fatalf("Create d: %v", err)
	}

	all, err := repo.List(ctx, widgetFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4, got %d", len(all))
	}
	if all[0].Name != "d" || all[3].Name != "a" {
		t.Errorf("order: got %s..%s, want d..a", all[0].Name, all[3].Name)
	}

	active, err := repo.List(ctx, widgetFilter{Status: "active"})
	if err != nil {
		t.Fatalf("List(active) failed: %v", err)
	}
	if len(active) != 3 {
		t.Errorf("expected 3 active, got %d", len(active))
	}
}

func TestRepo_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := repo.Create(ctx, &widget{Name: "Gear", Status: "active", Note: "keep me"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := repo.Update(ctx, created.ID.Hex(), widgetPatch{Status: strPtr("retired")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "retired" {
		t.Errorf("status: got %q", updated.Status)
	}
	if updated.Name != "Gear" || updated.Note != "keep me" {
		t.Errorf("absent fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updatedAt did not increase: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}

	again, err := repo.Update(ctx, created.ID.Hex(), widgetPatch{})
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if !again.UpdatedAt.After(updated.UpdatedAt) {
		t.Errorf("updatedAt did not increase on back-to-back update")
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := repo.Update(ctx, "xyz", widgetPatch{Name: strPtr("x")}); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("malformed id: got %v", err)
	}
	if _, err := repo.Update(ctx, primitive.NewObjectID().Hex(), widgetPatch{Name: strPtr("x")}); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("missing id: got %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := repo.Create(ctx, &widget{Name: "Bolt"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ok, err := repo.Delete(ctx, created.ID.Hex())
	if err != nil || !ok {
		t.Fatalf("first Delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, created.ID.Hex())
	if err != nil || ok {
		t.Errorf("second Delete: ok=%v err=%v, want false,nil", ok, err)
	}
	if _, err := repo.GetByID(ctx, created.ID.Hex()); !errors.Is(err, crud.ErrNotFound) {
		t.Errorf("GetByID after delete: %v", err)
	}
	if ok, _ := repo.Delete(ctx, "bogus"); ok {
		t.Error("malformed id should not delete")
	}
}

func TestRepo_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []widget{
		{Name: "AI Lab", Note: ""},
		{Name: "Robotics", Note: "uses ai planners"},
		{Name: "Soil", Tags: []string{"Ai-Ready"}},
		{Name: "Chemistry"},
		{Name: "C++ (legacy)"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.Search(ctx, "ai")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("search ai: expected 3 matches, got %d", len(got))
	}

	got, err = repo.Search(ctx, "c++ (")
	if err != nil {
		t.Fatalf("Search with metacharacters failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "C++ (legacy)" {
		t.Errorf("metacharacter search: got %+v", got)
	}

	got, err = repo.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("blank Search failed: %v", err)
	}
	if len(got) != len(seed) {
		t.Errorf("blank search: got %d, want %d", len(got), len(seed))
	}
}

func TestRepo_SearchScope(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := crud.New[widget](db, crud.Config{
		Collection:   "widgets",
		SearchFields: []string{"name"},
		SearchScope:  bson.M{"status": "published"},
	})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, w := range []widget{{Name: "Alpha", Status: "published"}, {Name: "Alpha draft", Status: "draft"}} {
		w := w
		if _, err := repo.Create(ctx, &w); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.Search(ctx, "alpha")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Status != "published" {
		t.Errorf("scoped search returned %+v", got)
	}
}

func TestRepo_DuplicateKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("widgets").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create index: %v", err)
	}

	conflict := &crud.ConflictError{Msg: "Widget already exists"}
	repo := crud.New[widget](db, crud.Config{Collection: "widgets", Conflict: conflict})

	if _, err := repo.Create(ctx, &widget{Name: "same"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err = repo.Create(ctx, &widget{Name: "same"})
	if !errors.Is(err, crud.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err.Error() != "Widget already exists" {
		t.Errorf("message: got %q", err.Error())
	}

	n, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("count after conflict: got %d, want 1", n)
	}
}

func TestRepo_Distinct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := newRepo(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, s := range []string{"x", "y", "x", ""} {
		if _, err := repo.Create(ctx, &widget{Name: "w", Status: s}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	vals, err := repo.Distinct(ctx, "status", nil)
	if err != nil {
		t.Fatalf("Distinct: %v", err)
	}
	if len(vals) != 2 {
		t.Errorf("expected 2 distinct non-empty values, got %v", vals)
	}
}
