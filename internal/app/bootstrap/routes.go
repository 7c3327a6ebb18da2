// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apiindexfeature "github.com/dalemusser/internhub/internal/app/features/apiindex"
	authapifeature "github.com/dalemusser/internhub/internal/app/features/authapi"
	healthfeature "github.com/dalemusser/internhub/internal/app/features/health"
	internsfeature "github.com/dalemusser/internhub/internal/app/features/interns"
	projectsfeature "github.com/dalemusser/internhub/internal/app/features/projects"
	internstore "github.com/dalemusser/internhub/internal/app/store/interns"
	projectstore "github.com/dalemusser/internhub/internal/app/store/projects"
	"github.com/dalemusser/internhub/internal/app/system/assignment"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// InternHub builds the stores and the assignment coordinator once here,
// then mounts the JSON feature routers: the public index, health and
// auth endpoints, and the token-gated intern and project collections.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokenMgr, err := auth.NewTokenManager(appCfg.AuthTokenSecret, appCfg.AuthTokenTTL, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	creds := auth.AdminCredentials{
		Username:     appCfg.AdminUsername,
		Password:     appCfg.AdminPassword,
		PasswordHash: appCfg.AdminPasswordHash,
	}

	db := deps.InternHubMongoDatabase
	internStore := internstore.New(db)
	projectStore := projectstore.New(db)
	coordinator := assignment.New(internStore, projectStore, logger)

	r := chi.NewRouter()

	// Request logging with propagated request IDs.
	r.Use(requestlog.Middleware(logger))

	// The SPA is served from a different origin during development.
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   appCfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.InternHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Welcome document at the root
	r.Get("/", apiindexfeature.Serve)

	// Authentication
	authHandler := authapifeature.NewHandler(creds, tokenMgr, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	// Intern management
	internsHandler := internsfeature.NewHandler(internStore, coordinator, logger)
	r.Mount("/api/interns", internsfeature.Routes(internsHandler, tokenMgr))

	// Project management (assignment endpoints live here)
	projectsHandler := projectsfeature.NewHandler(projectStore, internStore, coordinator, logger)
	r.Mount("/api/projects", projectsfeature.Routes(projectsHandler, tokenMgr))

	return r, nil
}
