// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-shortener-users service. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token lifetimes, and the bcrypt cost.
	App App `envPrefix:"APP_"`

	// Storage holds the connection settings of the user store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the outbound mail transport used for password reset e-mails.
	Mail Mail `envPrefix:"MAIL_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend used by the
// application.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m"). Zero issues tokens without expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetTokenTTL is the lifetime of a password reset link.
	// Env: APP_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// FrontendURL is the base URL of the web client; reset links point to
	// <FrontendURL>/reset-password/<token>.
	// Env: APP_FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:4000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in the environment.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the storage backend.
type DB struct {
	// DSN selects the backend by scheme:
	//   mongodb://... or mongodb+srv://...  MongoDB
	//   postgres://... or postgresql://...  PostgreSQL
	//   memory                              in-process maps
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Name is the MongoDB database name. Ignored by other backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// ConnectRetries bounds the connection attempts made at startup.
	// Env: STORAGE_DB_CONNECT_RETRIES
	ConnectRetries uint64 `env:"CONNECT_RETRIES"`
}

// Mail holds the outbound mail transport settings.
type Mail struct {
	// Transport is "smtp" or "http".
	// Env: MAIL_TRANSPORT
	Transport string `env:"TRANSPORT"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// SMTPSecure enables implicit TLS (port 465 style connections).
	SMTPSecure bool `env:"SMTP_SECURE"`

	// From is the sender address. Defaults to SMTPUser when empty.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// APIURL and APIKey configure the "http" transport: messages are
	// POSTed as JSON to APIURL with a bearer APIKey.
	APIURL string `env:"API_URL"`
	APIKey string `env:"API_KEY"`
}

// Sender returns the From address, falling back to the SMTP user.
func (m Mail) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.SMTPUser
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ResetTokenCleanupInterval is how often expired reset tokens are purged.
	// Env: WORKERS_RESET_TOKEN_CLEANUP_INTERVAL
	ResetTokenCleanupInterval time.Duration `env:"RESET_TOKEN_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (path from ENV_FILE, default ".env"; optional)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(envFilePath()).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
