// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers ports, TLS, logging, CORS and body limits.
// Everything the research site itself needs lives here and is passed to
// each lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Auth token configuration
	JWTSecret      string        // HMAC key for signing auth tokens (32+ chars)
	JWTTTL         time.Duration // Token lifetime
	AuthCookieName string        // Cookie holding the token (default: auth-token)
	CookieDomain   string        // Cookie domain (blank means current host)

	// Bootstrap admin, created on startup when absent
	AdminEmail    string
	AdminPassword string

	// Database operation timeouts
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
