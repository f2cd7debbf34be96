package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
	// ErrNotIssued is returned when a verification code is checked before any
	// code was issued for that email.
	ErrNotIssued = errors.New("verification code not issued")
	// ErrDependency marks failures of external collaborators (user store,
	// mail delivery) so the boundary layer can answer with a server error
	// instead of a client error.
	ErrDependency = errors.New("dependency failure")
)

// Validation kinds carried by ValidationError.
const (
	ValidationIdentifier = "identifier"
	ValidationPassword   = "password"
	ValidationEmail      = "email"
)

// ValidationError reports a syntactically malformed identifier, password or
// email with a human-readable reason. It unwraps to ErrBadRequest.
type ValidationError struct {
	Kind   string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrBadRequest }
