package entity

import "errors"

var (
	// ErrValidation is returned when a required field is missing or blank.
	ErrValidation = errors.New("validation failed")

	// ErrShortCodeExists is returned when attempting to create a URL with a short code that already exists.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")

	// ErrUserIDExists is returned when a freshly minted user id is already taken.
	ErrUserIDExists = errors.New("user id exists")
	// ErrEmailExists is returned when registering an email that already belongs to an account.
	ErrEmailExists = errors.New("email exists")
	// ErrUserNotFound is returned when no account matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the email is known but the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when an operation requires a logged in principal and there is none.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrForbidden is returned when the principal does not own the requested resource.
	ErrForbidden = errors.New("no permission")
)
