package services

import "errors"

var (
	// ErrUnauthenticated is returned by mutating operations that require a
	// signed-in user when the session is empty.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrSelfFollow is returned when a user tries to follow themselves.
	// The write is rejected before it reaches the store.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrItemNotFound is returned by GetItem when no record exists at the
	// requested key.
	ErrItemNotFound = errors.New("item not found")
)
