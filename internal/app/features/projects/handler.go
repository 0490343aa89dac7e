// internal/app/features/projects/handler.go
package projects

import (
	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	projectstore "github.com/dalemusser/researchsite/internal/app/store/projects"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Projects.
type Handler struct {
	DB       *mongo.Database
	Projects *projectstore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a new Projects handler bound to a DB and logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Projects: projectstore.New(db),
		ErrLog:   errLog,
		Log:      logger,
	}
}
