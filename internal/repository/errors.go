package repository

import "errors"

var (
	// ErrNotFound is returned when no user exists with the requested id.
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists is returned when another live user already holds the
	// email address.
	ErrEmailExists = errors.New("email already exists")
)
