// internal/domain/models/teammember.go
package models

// SocialLinks are optional profile URLs for a team member.
type SocialLinks struct {
	LinkedIn      string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter       string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	ResearchGate  string `bson:"research_gate,omitempty" json:"researchGate,omitempty"`
	GoogleScholar string `bson:"google_scholar,omitempty" json:"googleScholar,omitempty"`
}

// TeamMember is a public profile on the team page. It is independent of
// User accounts.
type TeamMember struct {
	Meta `bson:",inline"`

	Name           string      `bson:"name" json:"name"`
	Role           string      `bson:"role" json:"role"`
	Specialization string      `bson:"specialization" json:"specialization"`
	Email          string      `bson:"email" json:"email"`
	Bio            string      `bson:"bio" json:"bio"`
	ProfileImage   string      `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Status         string      `bson:"status" json:"status"`
	SocialLinks    SocialLinks `bson:"social_links" json:"socialLinks"`
	Publications   []string    `bson:"publications" json:"publications"`
	Achievements   []string    `bson:"achievements" json:"achievements"`
}

// TeamMemberPatch is a partial update. Nil fields are left untouched.
type TeamMemberPatch struct {
	Name           *string      `bson:"name,omitempty" json:"name,omitempty"`
	Role           *string      `bson:"role,omitempty" json:"role,omitempty"`
	Specialization *string      `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Email          *string      `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Bio            *string      `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage   *string      `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Status         *string      `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	SocialLinks    *SocialLinks `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	Publications   *[]string    `bson:"publications,omitempty" json:"publications,omitempty"`
	Achievements   *[]string    `bson:"achievements,omitempty" json:"achievements,omitempty"`
}
