// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Admin credentials for the single-account login
	AdminUsername     string // Admin login name
	AdminPassword     string // Plaintext admin password (dev only; prefer the hash)
	AdminPasswordHash string // bcrypt hash of the admin password (wins over plaintext)

	// Bearer token configuration
	AuthTokenSecret string        // HMAC signing secret for issued tokens
	AuthTokenTTL    time.Duration // How long issued tokens stay valid

	// CORS configuration for the SPA
	CORSAllowedOrigins []string // Origins allowed to call the API from a browser

	// Base URL the service is reachable at
	BaseURL string // e.g., "http://localhost:3000"

	// Demo data seeding
	SeedDemoData bool // Insert sample interns/projects into an empty database
}
