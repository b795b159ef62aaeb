package logstore

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthExpired means the store rejected the credential (401/403).
	ErrAuthExpired = errors.New("log store rejected credential")
	// ErrTransport covers network failures and unreadable responses.
	ErrTransport = errors.New("log store unreachable")
)

// RemoteRejectedError is a non-success status other than an auth failure.
type RemoteRejectedError struct {
	Status  int
	Message string
}

func (e *RemoteRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("log store rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("log store rejected request: status %d: %s", e.Status, e.Message)
}

// Outcome is the externally visible result class of a store call.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeAuthExpired    Outcome = "auth_expired"
	OutcomeTransport      Outcome = "transport"
	OutcomeRemoteRejected Outcome = "remote_rejected"
)

// Classify maps an error returned by the adapter to its outcome.
// Unrecognized errors count as transport failures.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, ErrAuthExpired) {
		return OutcomeAuthExpired
	}
	var rejected *RemoteRejectedError
	if errors.As(err, &rejected) {
		return OutcomeRemoteRejected
	}
	return OutcomeTransport
}

// statusError classifies a non-2xx HTTP status.
func statusError(status int, message string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: status %d: %s", ErrAuthExpired, status, message)
	}
	return &RemoteRejectedError{Status: status, Message: message}
}
