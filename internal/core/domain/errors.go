package domain

import "errors"

// Failure taxonomy. Every operation in the client surfaces one of these;
// callers classify with errors.Is and decide whether to re-attempt.
// Nothing here is fatal to the process.
var (
	// ErrInvalidCredentials: the email/password pair did not match a user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized: the action requires a role the session does not hold.
	ErrUnauthorized = errors.New("action not permitted for role")

	// ErrNotFound: the requested resource does not exist on the platform.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: a required field was missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrUserExists: registration collided with an existing email.
	ErrUserExists = errors.New("user already exists")

	// ErrNetwork: transport failure or server-side error; the request may
	// be re-issued by the user, never automatically.
	ErrNetwork = errors.New("network failure")

	// ErrStorage: the local session storage is unavailable or corrupt.
	// Load paths degrade to "no session" instead of returning this.
	ErrStorage = errors.New("session storage failure")

	// ErrNoSession: an operation that needs an authenticated user ran
	// without one.
	ErrNoSession = errors.New("no authenticated session")
)
