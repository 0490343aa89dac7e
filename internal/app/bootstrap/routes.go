// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contentfeature "github.com/dalemusser/researchsite/internal/app/features/content"
	errorsfeature "github.com/dalemusser/researchsite/internal/app/features/errors"
	galleryfeature "github.com/dalemusser/researchsite/internal/app/features/gallery"
	healthfeature "github.com/dalemusser/researchsite/internal/app/features/health"
	loginfeature "github.com/dalemusser/researchsite/internal/app/features/login"
	logoutfeature "github.com/dalemusser/researchsite/internal/app/features/logout"
	projectsfeature "github.com/dalemusser/researchsite/internal/app/features/projects"
	teamfeature "github.com/dalemusser/researchsite/internal/app/features/team"
	userinfofeature "github.com/dalemusser/researchsite/internal/app/features/userinfo"
	usersfeature "github.com/dalemusser/researchsite/internal/app/features/users"
	userstore "github.com/dalemusser/researchsite/internal/app/store/users"
	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"github.com/dalemusser/researchsite/internal/app/system/jsonutil"
	"github.com/dalemusser/researchsite/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Every API feature is mounted under /api; health
// and metrics sit at the root for load balancers and scrapers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	authMgr, err := auth.NewManager(appCfg.JWTSecret, appCfg.JWTTTL, appCfg.AuthCookieName, appCfg.CookieDomain, secure, logger)
	if err != nil {
		logger.Error("auth manager init failed", zap.Error(err))
		return nil, err
	}

	// Re-read the user on each request so role changes and deactivations
	// take effect immediately.
	authMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	errLog := errorsfeature.NewErrorLogger(logger)
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(authMgr.LoadUser)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonutil.Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonutil.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", m.Handler())

	r.Route("/api", func(api chi.Router) {
		// Authentication
		loginHandler := loginfeature.NewHandler(deps.MongoDatabase, authMgr, errLog, logger)
		api.Mount("/auth/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(authMgr, logger)
		api.Mount("/auth/logout", logoutfeature.Routes(logoutHandler))

		meHandler := userinfofeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/auth/me", userinfofeature.Routes(meHandler, authMgr))

		// Resources
		usersHandler := usersfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler, authMgr))

		projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/projects", projectsfeature.Routes(projectsHandler))

		contentHandler := contentfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/content", contentfeature.Routes(contentHandler, authMgr))

		galleryHandler := galleryfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/gallery", galleryfeature.Routes(galleryHandler, authMgr))

		teamHandler := teamfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		api.Mount("/team", teamfeature.Routes(teamHandler, authMgr))
	})

	return r, nil
}
