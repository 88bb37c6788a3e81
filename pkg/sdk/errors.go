package sdk

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced by the SDK.
type ErrorKind string

const (
	// KindUnauthenticated means the credential was missing or definitively
	// rejected by the server (HTTP 401).
	KindUnauthenticated ErrorKind = "unauthenticated"
	// KindTransientServer means a retryable server condition outlived its
	// retry budget (HTTP 429, 502, 503, 504).
	KindTransientServer ErrorKind = "transient_server"
	// KindServerRejected means the server answered with any other error status.
	KindServerRejected ErrorKind = "server_rejected"
	// KindNetwork means the request was sent but no response arrived,
	// including per-attempt timeouts.
	KindNetwork ErrorKind = "network"
	// KindAuthenticationFailed means login or registration was rejected or
	// returned a malformed success body.
	KindAuthenticationFailed ErrorKind = "authentication_failed"
	// KindInvalidTeamTarget means a team switch named a team that is not in
	// the current roster.
	KindInvalidTeamTarget ErrorKind = "invalid_team_target"
	// KindNotAuthenticated means an operation requiring an active session ran
	// without one.
	KindNotAuthenticated ErrorKind = "not_authenticated"
)

// Error is the classified failure type produced by the Gateway and Session.
// Status carries the HTTP status when the server answered, 0 otherwise.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	if e.cause != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the error kind from a classified error chain.
// Returns the empty kind for unclassified errors.
func KindOf(err error) ErrorKind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return ""
}

// IsUnauthenticated reports whether err is a definitive authentication rejection.
func IsUnauthenticated(err error) bool { return KindOf(err) == KindUnauthenticated }

// IsTransientServer reports whether err is a transient server failure that
// exhausted its retry budget.
func IsTransientServer(err error) bool { return KindOf(err) == KindTransientServer }

// IsNetwork reports whether err means no response was received.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }
