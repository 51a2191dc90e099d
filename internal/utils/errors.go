package utils

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrEmptySignKey     = errors.New("empty token sign key")
	ErrPasswordEncoding = errors.New("error encoding password")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)
