package api

import "errors"

var (
	// ErrUnauthorized means the stored credential is missing, invalid, or
	// expired, or a signin was rejected. The user must sign in (again).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested post does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists means signup was rejected for a duplicate email.
	ErrEmailExists = errors.New("email already registered")

	// ErrServerUnavailable covers transport failures and 5xx responses.
	// Safe to retry.
	ErrServerUnavailable = errors.New("server unavailable")
)
