// internal/domain/models/meta.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta is embedded in every stored document. The store sets all three
// fields; the database never generates timestamps.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// GetID returns the document's ObjectID.
func (m *Meta) GetID() primitive.ObjectID { return m.ID }

// Stamp assigns a fresh id and sets both timestamps to now.
func (m *Meta) Stamp(id primitive.ObjectID, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Status values shared by several collections.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusDraft     = "draft"
	StatusPublished = "published"
)
