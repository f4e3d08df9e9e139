package domain

import "errors"

// Sentinel errors for the failure taxonomy. Services return these (possibly
// wrapped); handlers map them to HTTP status codes with errors.Is.
var (
	// ErrValidation covers missing or malformed input.
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateIdentity is returned when registration races or repeats
	// an existing email. The store's unique index is the arbiter.
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrAuthentication covers unknown email or wrong password at login.
	// Both cases return the same error so the response does not reveal
	// which part was wrong.
	ErrAuthentication = errors.New("invalid credentials")

	// ErrMissingCredential means no Authorization header was presented.
	ErrMissingCredential = errors.New("missing authorization header")

	// ErrInvalidToken means a token was presented but failed signature,
	// shape, or expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is the ownership guard's rejection: caller is neither
	// the resource owner nor an admin.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the addressed resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition rejects an illegal reservation status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTooManyAttempts throttles repeated failed logins for one email.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
