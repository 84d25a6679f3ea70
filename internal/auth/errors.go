package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown name and wrong password so
	// callers cannot enumerate registered associations.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for malformed, tampered or expired tokens.
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrMissingToken is returned when a request carries no token at all.
	ErrMissingToken = errors.New("not authenticated")
)
