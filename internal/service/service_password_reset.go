package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/mail"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

// passwordResetService owns reset tokens end to end.
//
// The persisted ExpiresAt is the only expiry that counts at redemption; the
// exp claim inside the token is not re-validated.
type passwordResetService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	sender               mail.Sender

	tokenSignKey     string
	tokenIssuer      string
	resetTokenTTL    time.Duration
	frontendURL      string
	passwordHashCost int

	now func() time.Time

	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	resetTokenRepository store.ResetTokenRepository,
	sender mail.Sender,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		sender:               sender,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		resetTokenTTL:        cfg.ResetTokenTTL,
		frontendURL:          strings.TrimRight(cfg.FrontendURL, "/"),
		passwordHashCost:     cfg.PasswordHashCost,
		now:                  time.Now,
		logger:               logger,
	}
}

// RequestReset mails a reset link to the owner of email.
//
// Unknown addresses are reported as ErrUserDoesNotExist. Each call issues a
// new token; earlier ones stay valid until they expire or are redeemed.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserDoesNotExist
		}
		log.Err(err).Msg("error finding user by email")
		return fmt.Errorf("error finding user by email: %w", err)
	}

	claims := utils.NewClaims(s.tokenIssuer, user.ID, s.resetTokenTTL)
	token, err := utils.GenerateJWTToken(claims, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error signing reset token")
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	resetToken := models.ResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.resetTokenTTL).UTC(),
	}
	if err = s.resetTokenRepository.SaveResetToken(ctx, resetToken); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error saving reset token")
		return fmt.Errorf("error saving reset token: %w", err)
	}

	msg, err := mail.ResetPasswordMessage(user.Email, user.Name, s.resetLink(token))
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error rendering reset email")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}
	if err = s.sender.Send(ctx, msg); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error sending reset email")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	log.Info().Str("user_id", user.ID).Time("expires_at", resetToken.ExpiresAt).Msg("reset email sent")
	return nil
}

func (s *passwordResetService) resetLink(token string) string {
	return s.frontendURL + "/reset-password/" + token
}

// ResetPassword redeems token and sets newPassword on its owner.
//
// A missing, expired or orphaned token is reported as ErrResetLinkInvalid.
// Expired and orphaned tokens are deleted on the way out.
func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	record, err := s.resetTokenRepository.FindResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetLinkInvalid
		}
		log.Err(err).Msg("error finding reset token")
		return fmt.Errorf("error finding reset token: %w", err)
	}

	if record.IsExpired(s.now()) {
		s.discard(ctx, token)
		return ErrResetLinkInvalid
	}

	hash, err := hashPassword(newPassword, s.passwordHashCost)
	if err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("error hashing password")
		return err
	}

	result, err := s.userRepository.UpdateUser(ctx, record.UserID, models.UserUpdate{Password: &hash})
	if err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("user_id", record.UserID).Msg("reset token owner no longer exists")
		s.discard(ctx, token)
		return ErrResetLinkInvalid
	}

	if err = s.resetTokenRepository.DeleteResetToken(ctx, token); err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("error deleting redeemed reset token")
		return fmt.Errorf("error deleting reset token: %w", err)
	}

	log.Info().Str("user_id", record.UserID).Msg("password reset")
	return nil
}

// discard deletes a token that can no longer be redeemed. Failures are only
// logged: the cleanup worker removes leftovers.
func (s *passwordResetService) discard(ctx context.Context, token string) {
	if err := s.resetTokenRepository.DeleteResetToken(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting unusable reset token")
	}
}
