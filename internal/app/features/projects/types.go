// internal/app/features/projects/types.go
package projects

import "github.com/dalemusser/researchsite/internal/domain/models"

// createRequest is the POST /api/projects body. Fields are checked in
// declaration order; the first failure is reported.
type createRequest struct {
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description" validate:"required"`
	Status        string      `json:"status" validate:"omitempty,oneof=planning active completed on-hold"`
	Priority      string      `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	StartDate     models.Date `json:"startDate"`
	EndDate       models.Date `json:"endDate"`
	Budget        float64     `json:"budget" validate:"gte=0"`
	TeamLead      string      `json:"teamLead" validate:"required"`
	TeamMembers   []string    `json:"teamMembers"`
	Department    string      `json:"department" validate:"required"`
	FundingSource string      `json:"fundingSource"`
	Progress      int         `json:"progress"`
	Objectives    []string    `json:"objectives"`
	Deliverables  []string    `json:"deliverables"`
	Tags          []string    `json:"tags"`
}

func (c createRequest) project() models.Project {
	return models.Project{
		Title:         c.Title,
		Description:   c.Description,
		Status:        c.Status,
		Priority:      c.Priority,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Budget:        c.Budget,
		TeamLead:      c.TeamLead,
		TeamMembers:   c.TeamMembers,
		Department:    c.Department,
		FundingSource: c.FundingSource,
		Progress:      c.Progress,
		Objectives:    c.Objectives,
		Deliverables:  c.Deliverables,
		Tags:          c.Tags,
	}
}
