package teamstore

import (
	"context"
	"errors"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/researchsite/internal/app/system/normalize"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate is returned when another member already uses the email.
var ErrDuplicate error = &crud.ConflictError{Msg: "Team member with this email already exists"}

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Status         string
	Specialization string
}

func (f Filter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "status", normalize.Status(f.Status))
	crud.Eq(q, "specialization", f.Specialization)
	return q
}

type Store struct {
	*crud.Repo[models.TeamMember, *models.TeamMember]
}

func New(db *mongo.Database) *Store {
	return &Store{Repo: crud.New[models.TeamMember](db, crud.Config{
		Collection:   "team_members",
		SortField:    "created_at",
		SearchFields: []string{"name", "role", "specialization", "email"},
		Conflict:     ErrDuplicate,
	})}
}

func (s *Store) Create(ctx context.Context, m models.TeamMember) (*models.TeamMember, error) {
	m.Name = normalize.Name(m.Name)
	m.Email = normalize.Email(m.Email)
	m.Status = normalize.Status(m.Status)
	if m.Status == "" {
		m.Status = models.StatusActive
	}
	m.Bio = htmlsanitize.PlainText(m.Bio)
	m.Publications = normalize.List(m.Publications)
	m.Achievements = normalize.List(m.Achievements)

	if err := s.checkEmail(ctx, m.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, &m)
}

func (s *Store) Update(ctx context.Context, id string, patch models.TeamMemberPatch) (*models.TeamMember, error) {
	if patch.Email != nil {
		e := normalize.Email(*patch.Email)
		patch.Email = &e
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, crud.ErrNotFound
		}
		if err := s.checkEmail(ctx, e, oid); err != nil {
			return nil, err
		}
	}
	if patch.Bio != nil {
		v := htmlsanitize.PlainText(*patch.Bio)
		patch.Bio = &v
	}
	if patch.Publications != nil {
		v := normalize.List(*patch.Publications)
		patch.Publications = &v
	}
	if patch.Achievements != nil {
		v := normalize.List(*patch.Achievements)
		patch.Achievements = &v
	}
	return s.Repo.Update(ctx, id, patch)
}

// GetByEmail looks up a member by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	return s.FindOne(ctx, bson.M{"email": normalize.Email(email)})
}

// checkEmail returns ErrDuplicate when a member other than exclude has email.
func (s *Store) checkEmail(ctx context.Context, email string, exclude primitive.ObjectID) error {
	if email == "" {
		return nil
	}
	q := bson.M{"email": email}
	if !exclude.IsZero() {
		q["_id"] = bson.M{"$ne": exclude}
	}
	_, err := s.FindOne(ctx, q)
	switch {
	case err == nil:
		return ErrDuplicate
	case errors.Is(err, crud.ErrNotFound):
		return nil
	default:
		return err
	}
}
