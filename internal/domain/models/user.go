// internal/domain/models/user.go
package models

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is an account that can sign in to the admin console.
//
// PasswordHash holds a bcrypt hash and is never serialized to JSON.
type User struct {
	Meta `bson:",inline"`

	FirstName    string     `bson:"first_name" json:"firstName"`
	LastName     string     `bson:"last_name" json:"lastName"`
	USN          string     `bson:"usn" json:"usn"`
	Email        string     `bson:"email" json:"email"`
	Phone        string     `bson:"phone" json:"phone"`
	PasswordHash string     `bson:"password" json:"-"`
	Role         string     `bson:"role" json:"role"`
	Department   string     `bson:"department" json:"department"`
	Status       string     `bson:"status" json:"status"`
	JoinDate     time.Time  `bson:"join_date" json:"joinDate"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
}

// UserPatch is a partial update. Nil fields are left untouched.
// Passwords are changed through a dedicated store call, never a patch.
type UserPatch struct {
	FirstName  *string `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName   *string `bson:"last_name,omitempty" json:"lastName,omitempty"`
	USN        *string `bson:"usn,omitempty" json:"usn,omitempty"`
	Email      *string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `bson:"phone,omitempty" json:"phone,omitempty"`
	Role       *string `bson:"role,omitempty" json:"role,omitempty" validate:"omitempty,oneof=admin member"`
	Department *string `bson:"department,omitempty" json:"department,omitempty"`
	Status     *string `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
