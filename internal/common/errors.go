// Package common defines the error taxonomy and small helpers shared by the
// PeerColab server packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authorization and existence failures.
	ErrorPermissionDenied = errors.New("permission denied")
	ErrorConflict         = errors.New("conflict")
	ErrorInvalidInput     = errors.New("invalid input")

	// ErrorStorageUnavailable marks a failure of the underlying store
	// (I/O, corruption, closed pool). It is never a negative answer.
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Auth errors (invalid, expired or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)

// Rejection is a recoverable failure of an authorization or existence check.
// Error returns the message meant for the user; Unwrap returns the kind, so
// errors.Is(err, ErrorPermissionDenied) matches a rejected ownership check.
type Rejection struct {
	Kind    error
	Message string
}

// Reject builds a Rejection of the given kind.
func Reject(kind error, message string) *Rejection {
	return &Rejection{Kind: kind, Message: message}
}

func (r *Rejection) Error() string { return r.Message }

func (r *Rejection) Unwrap() error { return r.Kind }

// IsRejection reports whether err carries a Rejection and returns it.
func IsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
