// internal/domain/models/content.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Content types.
const (
	ContentProject      = "project"
	ContentPublication  = "publication"
	ContentResearchArea = "research-area"
	ContentAchievement  = "achievement"
)

// Content is a publishable article: a publication, research area,
// achievement or project write-up. Body is sanitized HTML.
type Content struct {
	Meta `bson:",inline"`

	Title       string              `bson:"title" json:"title"`
	Type        string              `bson:"type" json:"type"`
	Status      string              `bson:"status" json:"status"`
	Body        string              `bson:"content" json:"content"`
	Author      string              `bson:"author" json:"author"`
	Category    string              `bson:"category" json:"category"`
	Tags        []string            `bson:"tags" json:"tags"`
	PublishDate Date                `bson:"publish_date" json:"publishDate"`
	CreatedBy   *primitive.ObjectID `bson:"created_by,omitempty" json:"createdBy,omitempty"`
}

// ContentPatch is a partial update. Nil fields are left untouched.
type ContentPatch struct {
	Title       *string   `bson:"title,omitempty" json:"title,omitempty"`
	Type        *string   `bson:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=project publication research-area achievement"`
	Status      *string   `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Body        *string   `bson:"content,omitempty" json:"content,omitempty"`
	Author      *string   `bson:"author,omitempty" json:"author,omitempty"`
	Category    *string   `bson:"category,omitempty" json:"category,omitempty"`
	Tags        *[]string `bson:"tags,omitempty" json:"tags,omitempty"`
	PublishDate *Date     `bson:"publish_date,omitempty" json:"publishDate,omitempty"`
}
