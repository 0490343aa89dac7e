package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/normalize"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ErrDuplicate is returned when the email or USN is already taken.
var ErrDuplicate error = &crud.ConflictError{Msg: "User with this email or USN already exists"}

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Role       string
	Status     string
	Department string
}

func (f Filter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "role", normalize.Role(f.Role))
	crud.Eq(q, "status", normalize.Status(f.Status))
	crud.Eq(q, "department", f.Department)
	return q
}

type Store struct {
	*crud.Repo[models.User, *models.User]
}

func New(db *mongo.Database) *Store {
	return &Store{Repo: crud.New[models.User](db, crud.Config{
		Collection:   "users",
		SortField:    "created_at",
		SearchFields: []string{"first_name", "last_name", "email", "usn", "department"},
		Conflict:     ErrDuplicate,
	})}
}

// Create hashes plainPassword, applies defaults and inserts u.
func (s *Store) Create(ctx context.Context, u models.User, plainPassword string) (*models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.USN = strings.TrimSpace(u.USN)
	u.FirstName = normalize.Name(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.Role = normalize.Role(u.Role)
	if u.Role == "" {
		u.Role = models.RoleMember
	}
	u.Status = normalize.Status(u.Status)
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	if u.JoinDate.IsZero() {
		u.JoinDate = time.Now().UTC().Truncate(time.Millisecond)
	}

	taken, err := s.taken(ctx, u.Email, u.USN, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)
	u.LastLogin = nil

	return s.Repo.Create(ctx, &u)
}

// Update applies patch after normalizing email and checking that a
// changed email or USN is not taken by another user.
func (s *Store) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.Email != nil {
		e := normalize.Email(*patch.Email)
		patch.Email = &e
	}
	if patch.USN != nil {
		v := strings.TrimSpace(*patch.USN)
		patch.USN = &v
	}
	if patch.Email != nil || patch.USN != nil {
		cur, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		email, usn := "", ""
		if patch.Email != nil && *patch.Email != cur.Email {
			email = *patch.Email
		}
		if patch.USN != nil && *patch.USN != cur.USN {
			usn = *patch.USN
		}
		taken, err := s.taken(ctx, email, usn, cur.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicate
		}
	}
	return s.Repo.Update(ctx, id, patch)
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.FindOne(ctx, bson.M{"email": normalize.Email(email)})
}

// Authenticate returns the active user whose password matches and records
// the login time. Every mismatch is crud.ErrNotFound.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.FindOne(ctx, bson.M{"email": normalize.Email(email), "status": models.StatusActive})
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, crud.ErrNotFound
	}
	if err := s.UpdateLastLogin(ctx, u.ID.Hex()); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, u.ID.Hex())
}

// UpdateLastLogin stamps last_login with the current time.
func (s *Store) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err := s.Repo.Update(ctx, id, bson.M{"last_login": now})
	return err
}

// SetPassword replaces the stored hash.
func (s *Store) SetPassword(ctx context.Context, id, plainPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.Repo.Update(ctx, id, bson.M{"password": string(hash)})
	return err
}

// taken reports whether a user other than exclude already has email or usn.
func (s *Store) taken(ctx context.Context, email, usn string, exclude primitive.ObjectID) (bool, error) {
	var or bson.A
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if usn != "" {
		or = append(or, bson.M{"usn": usn})
	}
	if len(or) == 0 {
		return false, nil
	}
	q := bson.M{"$or": or}
	if !exclude.IsZero() {
		q["_id"] = bson.M{"$ne": exclude}
	}
	_, err := s.FindOne(ctx, q)
	if errors.Is(err, crud.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
