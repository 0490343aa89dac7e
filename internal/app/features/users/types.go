// internal/app/features/users/types.go
package users

import (
	"time"

	"github.com/dalemusser/researchsite/internal/domain/models"
)

// createRequest is the POST /api/users body. Every field but status and
// joinDate is required; the first missing one is reported.
type createRequest struct {
	FirstName  string      `json:"firstName" validate:"required"`
	LastName   string      `json:"lastName" validate:"required"`
	USN        string      `json:"usn" validate:"required"`
	Email      string      `json:"email" validate:"required,email"`
	Phone      string      `json:"phone" validate:"required"`
	Password   string      `json:"password" validate:"required"`
	Role       string      `json:"role" validate:"required,oneof=admin member"`
	Department string      `json:"department" validate:"required"`
	Status     string      `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate   models.Date `json:"joinDate"`
}

func (c createRequest) user() models.User {
	u := models.User{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		USN:        c.USN,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       c.Role,
		Department: c.Department,
		Status:     c.Status,
	}
	if !c.JoinDate.IsZero() {
		u.JoinDate = c.JoinDate.Time().UTC().Truncate(time.Millisecond)
	}
	return u
}

// updateRequest is the PUT /api/users/{id} body. A non-empty password
// replaces the stored hash.
type updateRequest struct {
	models.UserPatch
	Password *string `json:"password,omitempty"`
}
