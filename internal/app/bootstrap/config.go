// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for InternHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_username, etc.
//   - Environment variables: INTERNHUB_MONGO_URI, INTERNHUB_ADMIN_USERNAME, etc.
//   - Command-line flags: --mongo_uri, --admin_username, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "intern_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Admin login (single configured account)
	{Name: "admin_username", Default: "admin", Desc: "Admin login name"},
	{Name: "admin_password", Default: "", Desc: "Admin password in plaintext (dev only; prefer admin_password_hash)"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password (wins over admin_password)"},

	// Bearer tokens
	{Name: "auth_token_secret", Default: "", Desc: "HMAC signing secret for bearer tokens (required)"},
	{Name: "auth_token_ttl", Default: "1h", Desc: "Token lifetime (e.g., 1h, 30m)"},

	// CORS for the SPA dev server and deployed frontend
	{Name: "cors_allowed_origins", Default: "http://localhost:5173", Desc: "Comma-separated origins allowed to call the API"},

	// Base URL the service is reachable at
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for the service"},

	// Demo data
	{Name: "seed_demo_data", Default: false, Desc: "Seed sample interns/projects into an empty database"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INTERNHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminUsername:     appValues.String("admin_username"),
		AdminPassword:     appValues.String("admin_password"),
		AdminPasswordHash: appValues.String("admin_password_hash"),

		AuthTokenSecret: appValues.String("auth_token_secret"),
		AuthTokenTTL:    appValues.Duration("auth_token_ttl", time.Hour),

		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),

		BaseURL: appValues.String("base_url"),

		SeedDemoData: appValues.Bool("seed_demo_data"),
	}

	return coreCfg, appCfg, nil
}

// splitOrigins parses the comma-separated origin list, dropping empty
// entries and surrounding whitespace.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// InternHub validates the MongoDB URI format to catch configuration
// errors early, and refuses to start without a token secret or any
// usable admin credential.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthTokenSecret == "" {
		return fmt.Errorf("auth_token_secret must be set")
	}

	if appCfg.AdminPassword == "" && appCfg.AdminPasswordHash == "" {
		return fmt.Errorf("either admin_password or admin_password_hash must be set")
	}

	return nil
}
