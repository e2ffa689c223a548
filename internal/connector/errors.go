package connector

import (
	"errors"
	"fmt"
)

// Kind classifies connector failures so callers can pick a retry/alert
// strategy without inspecting vendor-specific detail.
type Kind int

const (
	// KindUnknown is the zero value; it never originates from a provider.
	KindUnknown Kind = iota
	// KindConnection covers vendor unreachable, timeouts, non-2xx transport
	// responses and malformed payloads. Recoverable by retry.
	KindConnection
	// KindConfiguration covers unknown connector identifiers and missing
	// account settings. Fatal at bind time.
	KindConfiguration
	// KindValidation covers vendor responses missing expected fields.
	KindValidation
	// KindNotFound covers a requested vendor entity being absent where the
	// operation requires a definite existence check.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is the single error type providers surface. Status carries an
// HTTP-style status code for operator-facing messages.
type Error struct {
	Kind    Kind
	Status  int
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("connector: %s: %s (%s)", e.Op, msg, e.Kind)
	}
	return fmt.Sprintf("connector: %s (%s)", msg, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindUnknown if err is not a connector
// error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// ConnectionError wraps a transport-level failure.
func ConnectionError(op string, status int, err error) *Error {
	return &Error{Kind: KindConnection, Status: status, Op: op, Err: err}
}

// ConfigurationError reports a bind-time configuration problem.
func ConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Status: 503, Message: message}
}

// ValidationError reports a vendor response missing expected fields.
func ValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Status: 422, Op: op, Message: message}
}

// NotFoundError reports an absent vendor entity.
func NotFoundError(op, message string) *Error {
	return &Error{Kind: KindNotFound, Status: 404, Op: op, Message: message}
}
