// internal/domain/models/galleryitem.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GalleryItem is an image shown in the public gallery.
type GalleryItem struct {
	Meta `bson:",inline"`

	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description" json:"description"`
	Category     string              `bson:"category" json:"category"`
	ImageURL     string              `bson:"image_url" json:"imageUrl"`
	ThumbnailURL string              `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	Status       string              `bson:"status" json:"status"`
	Tags         []string            `bson:"tags" json:"tags"`
	UploadedBy   *primitive.ObjectID `bson:"uploaded_by,omitempty" json:"uploadedBy,omitempty"`
}

// GalleryItemPatch is a partial update. Nil fields are left untouched.
type GalleryItemPatch struct {
	Title        *string   `bson:"title,omitempty" json:"title,omitempty"`
	Description  *string   `bson:"description,omitempty" json:"description,omitempty"`
	Category     *string   `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL     *string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ThumbnailURL *string   `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	Status       *string   `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Tags         *[]string `bson:"tags,omitempty" json:"tags,omitempty"`
}
