// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-grid-portal application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the deployment
	// environment and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sessions holds the session secret, cookie parameters, and lifetime.
	Sessions Sessions `envPrefix:"SESSION_"`

	// Auth holds password hashing and login rate-limiting parameters.
	// These are fixed per deployment and never request-controlled.
	Auth Auth `envPrefix:"AUTH_"`

	// Assets holds the static asset directory paths served by the portal.
	Assets Assets `envPrefix:"ASSETS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment environment flag ("production" enables
	// the Secure attribute on session cookies).
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Production reports whether the application runs in the production
// environment.
func (a App) Production() bool {
	return a.Environment == "production"
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":3000"`

	// RequestTimeout is the maximum duration allowed for handling a single
	// inbound request before the server answers with a timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL backend. The settings are
// enumerated individually (rather than as one DSN) to mirror the recognized
// deployment variables: host, user, password, name, port.
type DB struct {
	// Host is the database server host. Env: STORAGE_DB_HOST
	Host string `env:"HOST" envDefault:"localhost"`

	// User is the database role name. Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database role password. Env: STORAGE_DB_PASS
	Password string `env:"PASS"`

	// Name is the database name. Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// Port is the database server port. Env: STORAGE_DB_PORT
	Port int `env:"PORT" envDefault:"5432"`
}

// DSN assembles the PostgreSQL connection string from the individual
// settings.
func (db DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", db.User, db.Password, db.Host, db.Port, db.Name)
}

// Sessions holds session lifecycle and cookie parameters.
type Sessions struct {
	// Secret is the key used to HMAC-sign session cookie values.
	// Must be kept confidential. Env: SESSION_SECRET
	Secret string `env:"SECRET"`

	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME" envDefault:"portal_session"`

	// TTL is the fixed session lifetime. Env: SESSION_TTL
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// CleanupInterval controls how often expired session records are swept
	// from the store. Env: SESSION_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
}

// Auth holds password hashing and login rate-limiting parameters.
type Auth struct {
	// BcryptCost is the bcrypt cost factor applied when hashing a new
	// password at registration. Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// RateLimitAttempts is the number of failed login attempts allowed per
	// source address within one window. Env: AUTH_RATE_LIMIT_ATTEMPTS
	RateLimitAttempts int `env:"RATE_LIMIT_ATTEMPTS" envDefault:"5"`

	// RateLimitWindow is the fixed rate-limiting window.
	// Env: AUTH_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10m"`
}

// Assets holds the static asset directories served by the portal.
type Assets struct {
	// CSSDir is the stylesheet directory mounted at /css.
	// Env: ASSETS_CSS_DIR
	CSSDir string `env:"CSS_DIR" envDefault:"web/css"`

	// ImagesDir is the image directory mounted at /images.
	// Env: ASSETS_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR" envDefault:"web/images"`

	// HTMLDir is the HTML page directory mounted at /html. The login,
	// signup, landing, and registration confirmation pages are served
	// from it.
	// Env: ASSETS_HTML_DIR
	HTMLDir string `env:"HTML_DIR" envDefault:"web/html"`

	// ReleaseNotesDir is the directory listed by /api/release-notes-list.
	// Env: ASSETS_RELEASE_NOTES_DIR
	ReleaseNotesDir string `env:"RELEASE_NOTES_DIR" envDefault:"web/html/release_notes"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
