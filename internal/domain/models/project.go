// internal/domain/models/project.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project statuses and priorities.
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Project is a research project shown on the public site.
// TeamLead and TeamMembers are display names, not user ids.
type Project struct {
	Meta `bson:",inline"`

	Title         string              `bson:"title" json:"title"`
	Description   string              `bson:"description" json:"description"`
	Status        string              `bson:"status" json:"status"`
	Priority      string              `bson:"priority" json:"priority"`
	StartDate     Date                `bson:"start_date" json:"startDate"`
	EndDate       Date                `bson:"end_date" json:"endDate"`
	Budget        float64             `bson:"budget" json:"budget"`
	TeamLead      string              `bson:"team_lead" json:"teamLead"`
	TeamMembers   []string            `bson:"team_members" json:"teamMembers"`
	Department    string              `bson:"department" json:"department"`
	FundingSource string              `bson:"funding_source" json:"fundingSource"`
	Progress      int                 `bson:"progress" json:"progress"`
	Objectives    []string            `bson:"objectives" json:"objectives"`
	Deliverables  []string            `bson:"deliverables" json:"deliverables"`
	Tags          []string            `bson:"tags" json:"tags"`
	CreatedBy     *primitive.ObjectID `bson:"created_by,omitempty" json:"createdBy,omitempty"`
}

// ProjectPatch is a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title         *string   `bson:"title,omitempty" json:"title,omitempty"`
	Description   *string   `bson:"description,omitempty" json:"description,omitempty"`
	Status        *string   `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=planning active completed on-hold"`
	Priority      *string   `bson:"priority,omitempty" json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	StartDate     *Date     `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate       *Date     `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Budget        *float64  `bson:"budget,omitempty" json:"budget,omitempty" validate:"omitempty,gte=0"`
	TeamLead      *string   `bson:"team_lead,omitempty" json:"teamLead,omitempty"`
	TeamMembers   *[]string `bson:"team_members,omitempty" json:"teamMembers,omitempty"`
	Department    *string   `bson:"department,omitempty" json:"department,omitempty"`
	FundingSource *string   `bson:"funding_source,omitempty" json:"fundingSource,omitempty"`
	Progress      *int      `bson:"progress,omitempty" json:"progress,omitempty"`
	Objectives    *[]string `bson:"objectives,omitempty" json:"objectives,omitempty"`
	Deliverables  *[]string `bson:"deliverables,omitempty" json:"deliverables,omitempty"`
	Tags          *[]string `bson:"tags,omitempty" json:"tags,omitempty"`
}

// ClampProgress bounds p to 0–100.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
