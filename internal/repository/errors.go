package repository

import "errors"

var (
	// ErrUnknownConsole is returned when a game is linked to a console id
	// that does not exist.
	ErrUnknownConsole = errors.New("unknown console id")

	// ErrUnknownGame is returned when an achievement references a missing game.
	ErrUnknownGame = errors.New("unknown game id")

	// ErrEmailInUse is returned when an account already uses the address.
	ErrEmailInUse = errors.New("email already in use")
)
