// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the research site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: RESEARCHSITE_MONGO_URI, RESEARCHSITE_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (required)"},
	{Name: "mongo_database", Default: "research_site", Desc: "MongoDB database name"},

	// Auth
	{Name: "jwt_secret", Default: "", Desc: "Auth token signing secret (required, 32+ chars)"},
	{Name: "jwt_ttl", Default: "168h", Desc: "Auth token lifetime (e.g., 24h, 168h)"},
	{Name: "auth_cookie_name", Default: "auth-token", Desc: "Auth cookie name"},
	{Name: "cookie_domain", Default: "", Desc: "Auth cookie domain (blank means current host)"},

	// Bootstrap admin
	{Name: "admin_email", Default: "", Desc: "Email of the bootstrap admin (created on startup when absent)"},
	{Name: "admin_password", Default: "", Desc: "Password for the bootstrap admin"},

	// Timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document database operations"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list, search and count operations"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults; app keys use the
// RESEARCHSITE_ prefix.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "RESEARCHSITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		JWTSecret:      appValues.String("jwt_secret"),
		JWTTTL:         appValues.Duration("jwt_ttl", 7*24*time.Hour),
		AuthCookieName: appValues.String("auth_cookie_name"),
		CookieDomain:   appValues.String("cookie_domain"),

		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects a config the app cannot start with: a missing or
// malformed MongoDB URI, or no token secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return errors.New("mongo_uri is required")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if appCfg.AdminEmail != "" && appCfg.AdminPassword == "" {
		return errors.New("admin_email is set but admin_password is empty")
	}
	return nil
}
