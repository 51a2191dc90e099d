package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Mail transports accepted in Mail.Transport.
const (
	MailTransportSMTP = "smtp"
	MailTransportHTTP = "http"
)

const (
	defaultTokenIssuer     = "go-shortener-users"
	defaultResetTokenTTL   = time.Hour
	defaultFrontendURL     = "http://localhost:3000"
	defaultLogLevel        = "info"
	defaultVersion         = "dev"
	defaultDSN             = "mongodb://localhost:27017"
	defaultDBName          = "shortener"
	defaultConnectRetries  = 5
	defaultHTTPAddress     = "localhost:4000"
	defaultRequestTimeout  = 30 * time.Second
	defaultSMTPPort        = 587
	defaultCleanupInterval = 10 * time.Minute
	defaultEnvFile         = ".env"
	envFileVariable        = "ENV_FILE"
)

// defaultConfig returns the lowest-priority configuration source.
// TokenSignKey has no default and must always be provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			ResetTokenTTL:    defaultResetTokenTTL,
			PasswordHashCost: bcrypt.DefaultCost,
			FrontendURL:      defaultFrontendURL,
			LogLevel:         defaultLogLevel,
			Version:          defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN:            defaultDSN,
				Name:           defaultDBName,
				ConnectRetries: defaultConnectRetries,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Mail: Mail{
			Transport: MailTransportSMTP,
			SMTPPort:  defaultSMTPPort,
		},
		Workers: Workers{
			ResetTokenCleanupInterval: defaultCleanupInterval,
		},
	}
}
