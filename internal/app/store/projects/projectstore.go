package projectstore

import (
	"context"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	"github.com/dalemusser/researchsite/internal/app/system/normalize"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Status     string
	Priority   string
	Department string
	TeamLead   string
}

func (f Filter) Query() bson.M {
	q := bson.M{}
	crud.Eq(q, "status", normalize.Status(f.Status))
	crud.Eq(q, "priority", normalize.Status(f.Priority))
	crud.Eq(q, "department", f.Department)
	crud.Eq(q, "team_lead", f.TeamLead)
	return q
}

// Stats is the dashboard summary returned by GET /api/projects/stats.
type Stats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Planning  int64 `json:"planning"`
	OnHold    int64 `json:"onHold"`
}

type Store struct {
	*crud.Repo[models.Project, *models.Project]
}

func New(db *mongo.Database) *Store {
	return &Store{Repo: crud.New[models.Project](db, crud.Config{
		Collection:        "projects",
		SortField:         "created_at",
		SearchFields:      []string{"title", "description", "department", "team_lead"},
		ArraySearchFields: []string{"tags"},
	})}
}

// Create applies defaults and inserts p. actorID, when non-nil, is
// recorded as the creator.
func (s *Store) Create(ctx context.Context, p models.Project, actorID *primitive.ObjectID) (*models.Project, error) {
	p.Status = normalize.Status(p.Status)
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	p.Priority = normalize.Status(p.Priority)
	if p.Priority == "" {
		p.Priority = models.PriorityMedium
	}
	p.Progress = models.ClampProgress(p.Progress)
	p.TeamMembers = normalize.List(p.TeamMembers)
	p.Objectives = normalize.List(p.Objectives)
	p.Deliverables = normalize.List(p.Deliverables)
	p.Tags = normalize.List(p.Tags)
	p.CreatedBy = actorID
	return s.Repo.Create(ctx, &p)
}

// Update applies patch, clamping a provided progress value.
func (s *Store) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Progress != nil {
		v := models.ClampProgress(*patch.Progress)
		patch.Progress = &v
	}
	for _, l := range []**[]string{&patch.TeamMembers, &patch.Objectives, &patch.Deliverables, &patch.Tags} {
		if *l != nil {
			v := normalize.List(**l)
			*l = &v
		}
	}
	return s.Repo.Update(ctx, id, patch)
}

// Stats counts projects overall and per status.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{&st.Total, bson.M{}},
		{&st.Active, bson.M{"status": models.ProjectActive}},
		{&st.Completed, bson.M{"status": models.ProjectCompleted}},
		{&st.Planning, bson.M{"status": models.ProjectPlanning}},
		{&st.OnHold, bson.M{"status": models.ProjectOnHold}},
	}
	for _, c := range counts {
		n, err := s.Count(ctx, c.filter)
		if err != nil {
			return Stats{}, err
		}
		*c.dst = n
	}
	return st, nil
}
