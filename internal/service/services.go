package service

import (
	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/mail"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/models"
)

type Services struct {
	AuthService          AuthService
	UserService          UserService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

func NewServices(
	storages *store.Storages,
	sender mail.Sender,
	cfg config.App,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg, logger),
		UserService:          NewUserService(storages.UserRepository, storages.URLRepository, cfg, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, storages.ResetTokenRepository, sender, cfg, logger),
		AppInfoService:       appInfoService,
	}, nil
}
