package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/researchsite/internal/app/system/indexes"
	"github.com/dalemusser/researchsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, ctx context.Context, coll *mongo.Collection) map[string]bool {
	t.Helper()
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	// SetupTestDB has already run EnsureAll once.
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		collection string
		expected   []string
	}{
		{"users", []string{"uniq_users_email", "uniq_users_usn", "idx_users_role_status_created"}},
		{"projects", []string{"idx_projects_created", "idx_projects_status_created", "idx_projects_department_created"}},
		{"content", []string{"idx_content_status_type_published", "idx_content_category_published"}},
		{"team_members", []string{"uniq_team_members_email", "idx_team_members_status_created"}},
		{"gallery", []string{"idx_gallery_status_category_created"}},
	}

	for _, tt := range tests {
		names := indexNames(t, ctx, db.Collection(tt.collection))
		for _, name := range tt.expected {
			if !names[name] {
				t.Errorf("expected index %q to exist on %s collection", name, tt.collection)
			}
		}
	}
}

func TestEnsureAll_RecreatesRenamedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	gallery := db.Collection("gallery")
	if _, err := gallery.Indexes().DropOne(ctx, "idx_gallery_status_category_created"); err != nil {
		t.Fatalf("drop: %v", err)
	}
	_, err := gallery.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		t.Fatalf("create unnamed: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	if !indexNames(t, ctx, gallery)["idx_gallery_status_category_created"] {
		t.Error("expected index to be recreated under its desired name")
	}
}

func TestEnsureAll_UniqueEmailEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	team := db.Collection("team_members")
	if _, err := team.InsertOne(ctx, bson.M{"email": "dup@example.edu"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := team.InsertOne(ctx, bson.M{"email": "dup@example.edu"}); !mongo.IsDuplicateKeyError(err) {
		t.Errorf("expected duplicate key error, got %v", err)
	}

	// Users without a USN share the empty value without colliding.
	users := db.Collection("users")
	for _, email := range []string{"a@example.edu", "b@example.edu"} {
		if _, err := users.InsertOne(ctx, bson.M{"email": email, "usn": ""}); err != nil {
			t.Errorf("insert %s: %v", email, err)
		}
	}
}
