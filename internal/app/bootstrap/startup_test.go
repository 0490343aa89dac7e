package bootstrap

import (
	"testing"

	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/researchsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "Admin@College.edu", "admin-pass", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"email": "admin@college.edu"}).Decode(&user); err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role 'admin', got %q", user.Role)
	}
	if user.Status != models.StatusActive {
		t.Errorf("expected status 'active', got %q", user.Status)
	}

	if _, err := userstore.New(db).Authenticate(ctx, "admin@college.edu", "admin-pass"); err != nil {
		t.Errorf("bootstrap admin cannot sign in: %v", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	for i := 0; i < 2; i++ {
		if err := ensureAdmin(ctx, deps, "admin@college.edu", "admin-pass", testLogger()); err != nil {
			t.Fatalf("run %d: ensureAdmin failed: %v", i, err)
		}
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 user, got %d", n)
	}
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	existing := fixtures.CreateInactiveUser(ctx, "Existing", "existing@college.edu")

	deps := DBDeps{MongoDatabase: db}
	if err := ensureAdmin(ctx, deps, "existing@college.edu", "ignored", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Role != models.RoleAdmin || user.Status != models.StatusActive {
		t.Errorf("expected active admin, got role=%q status=%q", user.Role, user.Status)
	}
	if user.PasswordHash != existing.PasswordHash {
		t.Error("existing password must not be replaced")
	}
}

func TestEnsureAdmin_SkipsTakenUSN(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	users := userstore.New(db)
	if _, err := users.Create(ctx, models.User{
		FirstName:  "Member",
		LastName:   "Holder",
		USN:        "ADM001",
		Email:      "holder@college.edu",
		Department: "Physics",
	}, "pw"); err != nil {
		t.Fatalf("seed member: %v", err)
	}

	deps := DBDeps{MongoDatabase: db}
	if err := ensureAdmin(ctx, deps, "admin@college.edu", "admin-pass", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	admin, err := users.GetByEmail(ctx, "admin@college.edu")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if admin.USN != "ADM002" || admin.Role != models.RoleAdmin {
		t.Errorf("admin: usn=%q role=%q", admin.USN, admin.Role)
	}
}
