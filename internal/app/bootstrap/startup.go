// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/researchsite/internal/app/store/crud"
	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/app/system/timeouts"
	"github.com/dalemusser/researchsite/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after schema setup and before the
// HTTP handler is built: it applies configured timeouts and makes sure the
// bootstrap admin exists.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})

	if appCfg.AdminEmail == "" {
		return nil
	}
	return ensureAdmin(ctx, deps, appCfg.AdminEmail, appCfg.AdminPassword, logger)
}

// ensureAdmin creates the admin account when no user has email, or
// promotes and reactivates the existing one. The password of an existing
// account is left alone.
func ensureAdmin(ctx context.Context, deps DBDeps, email, password string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == models.RoleAdmin && existing.Status == models.StatusActive {
			return nil
		}
		role, status := models.RoleAdmin, models.StatusActive
		if _, err := users.Update(ctx, existing.ID.Hex(), models.UserPatch{Role: &role, Status: &status}); err != nil {
			return err
		}
		logger.Info("promoted existing user to admin", zap.String("email", existing.Email))
		return nil
	case !errors.Is(err, crud.ErrNotFound):
		return err
	}

	usn, err := freeAdminUSN(ctx, users)
	if err != nil {
		return err
	}
	created, err := users.Create(ctx, models.User{
		FirstName:  "Admin",
		LastName:   "User",
		USN:        usn,
		Email:      email,
		Role:       models.RoleAdmin,
		Department: "Administration",
		Status:     models.StatusActive,
	}, password)
	if err != nil {
		return err
	}
	logger.Info("created bootstrap admin", zap.String("email", created.Email))
	return nil
}

// freeAdminUSN returns the first ADMnnn not held by any user.
func freeAdminUSN(ctx context.Context, users *userstore.Store) (string, error) {
	for i := 1; i <= 999; i++ {
		usn := fmt.Sprintf("ADM%03d", i)
		_, err := users.FindOne(ctx, bson.M{"usn": usn})
		if errors.Is(err, crud.ErrNotFound) {
			return usn, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("no free admin USN between ADM001 and ADM999")
}
