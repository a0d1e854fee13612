package service

import (
	"errors"

	"trackr/backend/internal/models"
)

var (
	// ErrForbidden is returned when a non-administrator mutates the catalog.
	ErrForbidden = errors.New("administrator role required")
	// ErrNotFound is returned by mutations on a missing record.
	ErrNotFound = errors.New("not found")
	// ErrRequired is wrapped with the name of the empty field.
	ErrRequired = errors.New("required field missing")
	// ErrDeleteConfirmation is returned when the typed phrase does not match.
	ErrDeleteConfirmation = errors.New("confirmation phrase mismatch")
	// ErrInvalidToken is returned for an unknown email confirmation token.
	ErrInvalidToken = errors.New("invalid confirmation token")
)

func requireAdmin(actor *models.Profile) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
