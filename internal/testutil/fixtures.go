package testutil

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures inserts test documents directly, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}

func stamp() models.Meta {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Meta{ID: primitive.NewObjectID(), CreatedAt: now, UpdatedAt: now}
}

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// bcrypt.MinCost keeps fixtures fast; CompareHashAndPassword accepts any cost.
var testPasswordHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// CreateUser creates an active user with TestPassword.
func (f *Fixtures) CreateUser(ctx context.Context, firstName, email, role string) models.User {
	f.t.Helper()
	return f.createUser(ctx, firstName, email, role, models.StatusActive)
}

// CreateAdmin creates an active admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, firstName, email string) models.User {
	f.t.Helper()
	return f.createUser(ctx, firstName, email, models.RoleAdmin, models.StatusActive)
}

// CreateInactiveUser creates a member whose status is inactive.
func (f *Fixtures) CreateInactiveUser(ctx context.Context, firstName, email string) models.User {
	f.t.Helper()
	return f.createUser(ctx, firstName, email, models.RoleMember, models.StatusInactive)
}

func (f *Fixtures) createUser(ctx context.Context, firstName, email, role, status string) models.User {
	f.t.Helper()
	m := stamp()
	u := models.User{
		Meta:         m,
		FirstName:    firstName,
		LastName:     "Tester",
		USN:          "USN" + strings.ToUpper(m.ID.Hex()[16:]),
		Email:        strings.ToLower(email),
		Phone:        "9999999999",
		PasswordHash: testPasswordHash,
		Role:         role,
		Department:   "Computer Science",
		Status:       status,
		JoinDate:     m.CreatedAt,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateProject creates a project with the given title and status.
func (f *Fixtures) CreateProject(ctx context.Context, title, status string) models.Project {
	f.t.Helper()
	p := models.Project{
		Meta:         stamp(),
		Title:        title,
		Description:  "Description of " + title,
		Status:       status,
		Priority:     models.PriorityMedium,
		TeamLead:     "Dr. Lead",
		Department:   "Computer Science",
		TeamMembers:  []string{},
		Objectives:   []string{},
		Deliverables: []string{},
		Tags:         []string{},
	}
	f.insert(ctx, "projects", p)
	return p
}

// CreateContent creates a content item of type contentType with status.
func (f *Fixtures) CreateContent(ctx context.Context, title, contentType, status string) models.Content {
	f.t.Helper()
	m := stamp()
	c := models.Content{
		Meta:        m,
		Title:       title,
		Type:        contentType,
		Status:      status,
		Body:        "<p>" + title + "</p>",
		Author:      "Dr. Author",
		Category:    "General",
		Tags:        []string{},
		PublishDate: models.NewDate(m.CreatedAt),
	}
	f.insert(ctx, "content", c)
	return c
}

// CreateTeamMember creates an active team member.
func (f *Fixtures) CreateTeamMember(ctx context.Context, name, email, specialization string) models.TeamMember {
	f.t.Helper()
	tm := models.TeamMember{
		Meta:           stamp(),
		Name:           name,
		Role:           "Researcher",
		Specialization: specialization,
		Email:          strings.ToLower(email),
		Status:         models.StatusActive,
		Publications:   []string{},
		Achievements:   []string{},
	}
	f.insert(ctx, "team_members", tm)
	return tm
}

// CreateGalleryItem creates a gallery item in category with status.
func (f *Fixtures) CreateGalleryItem(ctx context.Context, title, category, status string) models.GalleryItem {
	f.t.Helper()
	g := models.GalleryItem{
		Meta:     stamp(),
		Title:    title,
		Category: category,
		Status:   status,
		ImageURL: "/images/" + strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".jpg",
		Tags:     []string{},
	}
	f.insert(ctx, "gallery", g)
	return g
}
