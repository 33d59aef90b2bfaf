package service

import "errors"

// Domain error taxonomy. Handlers map these to transport status codes; the
// raw error text of wrapped causes never reaches clients.
var (
	// ErrValidation marks missing or malformed input. Wrap it with detail:
	// fmt.Errorf("%w: title is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on any login failure. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable wraps failures of the external object storage.
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
