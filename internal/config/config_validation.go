// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*Configs
// errors wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must not be negative and reset ttl must be set", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported dsn %q", ErrInvalidStorageConfigs, cfg.Storage.DB.DSN)
	}
	if isMongoDSN(cfg.Storage.DB.DSN) && cfg.Storage.DB.Name == "" {
		return fmt.Errorf("%w: mongo database name is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Mail.Transport {
	case MailTransportSMTP:
		if cfg.Mail.SMTPHost == "" || cfg.Mail.SMTPPort <= 0 || cfg.Mail.Sender() == "" {
			return fmt.Errorf("%w: smtp transport needs host, port and sender", ErrInvalidMailConfigs)
		}
	case MailTransportHTTP:
		if cfg.Mail.APIURL == "" || cfg.Mail.Sender() == "" {
			return fmt.Errorf("%w: http transport needs api url and sender", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, cfg.Mail.Transport)
	}

	if cfg.Workers.ResetTokenCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	return dsn == "memory" || isMongoDSN(dsn) || isPostgresDSN(dsn)
}

func isMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
