// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/dalemusser/researchsite/internal/app/features/errors"
	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the admin user-management API.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
