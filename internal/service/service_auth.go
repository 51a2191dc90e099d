package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session token remains valid.
	// Zero issues tokens without an expiry.
	tokenDuration time.Duration

	passwordHashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// SignUp creates a new account.
//
// Email is checked before name so that a request colliding on both reports
// the e-mail. The lookups only produce precise messages: uniqueness itself
// is guaranteed by the repository, which reports a lost race with the same
// errors.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if name, email or password is empty.
//   - store.ErrEmailAlreadyExists or store.ErrNameAlreadyExists.
//   - ErrPasswordTooShort or ErrPasswordTooLong.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("name", req.Name).Str("email", req.Email).Msg("invalid sign up data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := a.ensureFree(ctx, a.userRepository.FindUserByEmail, req.Email, store.ErrEmailAlreadyExists); err != nil {
		return models.User{}, err
	}
	if err := a.ensureFree(ctx, a.userRepository.FindUserByName, req.Name, store.ErrNameAlreadyExists); err != nil {
		return models.User{}, err
	}

	if err := validatePassword(req.Password); err != nil {
		return models.User{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
	})
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return user, nil
}

// ensureFree returns taken when find locates a user by value.
func (a *authService) ensureFree(
	ctx context.Context,
	find func(context.Context, string) (models.User, error),
	value string,
	taken error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		logger.FromContext(ctx).Err(err).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
}

// Login authenticates an existing user by name and password.
//
// An unknown name and a wrong password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("name", req.Name).Msg("login with unknown name")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("name", req.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed session JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	claims := utils.NewClaims(a.tokenIssuer, user.ID, a.tokenDuration)

	signed, err := utils.GenerateJWTToken(claims, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// ParseToken validates a raw JWT string and returns its claims.
// Expired tokens yield ErrTokenIsExpired, anything else that fails
// validation yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	return hashPassword(password, a.passwordHashCost)
}

// hashPassword maps codec failures onto service errors.
func hashPassword(password string, cost int) (string, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return hash, nil
}
