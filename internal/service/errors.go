package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a login or registration request
	// is missing the client, username, or password field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown (client, username) pair
	// and a wrong password. The two cases are deliberately indistinguishable
	// to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials for this client")

	// ErrRegistrationFailed is the generic registration failure returned for
	// any downstream error. Internals are logged, never surfaced.
	ErrRegistrationFailed = errors.New("registration failed")
)
