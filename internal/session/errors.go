package session

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrRateLimited        = errors.New("too many sign-in attempts")
	ErrEmailTaken         = errors.New("email already registered")
	// ErrNotAuthenticated is returned when a token is missing, invalid or revoked.
	ErrNotAuthenticated = errors.New("not authenticated")
)
