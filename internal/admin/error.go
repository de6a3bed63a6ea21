package admin

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
)
