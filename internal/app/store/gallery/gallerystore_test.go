package gallerystore_test

import (
	"testing"

	gallerystore "github.com/dalemusser/researchsite/internal/app/store/gallery"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/researchsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedGallery(t *testing.T, store *gallerystore.Store) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	items := []models.GalleryItem{
		{Title: "Lab Opening", Category: "Events", Status: "published", ImageURL: "/img/1.jpg"},
		{Title: "Robot Arm", Category: "Research", Status: "published", ImageURL: "/img/2.jpg", Tags: []string{"robotics"}},
		{Title: "Hackathon", Category: "Events", Status: "draft", ImageURL: "/img/3.jpg"},
		{Title: "Award Night", Category: "Awards", Status: "draft", ImageURL: "/img/4.jpg"},
	}
	for _, g := range items {
		if _, err := store.Create(ctx, g, nil); err != nil {
			t.Fatalf("seed %q: %v", g.Title, err)
		}
	}
}

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uploader := primitive.NewObjectID()
	g, err := store.Create(ctx, models.GalleryItem{Title: "Poster", ImageURL: "https://cdn.example/p.png"}, &uploader)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Status != models.StatusDraft {
		t.Errorf("status: got %q, want draft", g.Status)
	}
	if g.UploadedBy == nil || *g.UploadedBy != uploader {
		t.Errorf("uploadedBy: got %v", g.UploadedBy)
	}
	if g.Tags == nil {
		t.Error("tags should be empty, not nil")
	}
}

func TestStore_ListCategoryAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	seedGallery(t, store)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name   string
		filter gallerystore.Filter
		want   int
	}{
		{"all", gallerystore.Filter{}, 4},
		{"events", gallerystore.Filter{Category: "Events"}, 2},
		{"events published", gallerystore.Filter{Category: "Events", Status: "published"}, 1},
		{"published helper", gallerystore.Published(""), 2},
		{"published awards", gallerystore.Published("Awards"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStore_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	empty, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories on empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty collection: got %v", empty)
	}

	seedGallery(t, store)
	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Events" || cats[1] != "Research" {
		t.Errorf("categories: got %v, want [Events Research]", cats)
	}
}

func TestStore_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	seedGallery(t, store)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Search(ctx, "ROBOTICS")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Robot Arm" {
		t.Errorf("Search(ROBOTICS): got %+v", got)
	}

	// Unscoped: drafts are searchable too.
	got, err = store.Search(ctx, "events")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Search(events): got %d, want 2", len(got))
	}
}
