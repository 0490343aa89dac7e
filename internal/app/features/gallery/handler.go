// internal/app/features/gallery/handler.go
package gallery

import (
	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	gallerystore "github.com/dalemusser/researchsite/internal/app/store/gallery"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public gallery and its admin writes.
type Handler struct {
	DB      *mongo.Database
	Gallery *gallerystore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Gallery: gallerystore.New(db),
		ErrLog:  errLog,
		Log:     logger,
	}
}
