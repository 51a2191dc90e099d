package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = errors.New("password is too long")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrUserDoesNotExist = errors.New("user does not exist")
	ErrResetLinkInvalid = errors.New("reset link is invalid or has expired")
	ErrMailDelivery     = errors.New("mail delivery failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
