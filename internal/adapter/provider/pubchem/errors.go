package pubchem

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

// Fault codes returned by PUG REST.
const (
	FaultBadRequest = "PUGREST.BadRequest"
	FaultNotFound   = "PUGREST.NotFound"
)

// ErrPollExhausted is returned when a deferred result is still pending after
// the configured number of poll attempts.
var ErrPollExhausted = fmt.Errorf("pubchem: poll attempts exhausted: %w", domain.ErrUnavailable)

// FaultError is a structured fault object returned by PubChem.
// It matches domain.ErrRemoteFault, and also domain.ErrNotFound for
// PUGREST.NotFound.
type FaultError struct {
	Code    string
	Message string
	Details []string
}

func (e *FaultError) Error() string {
	msg := fmt.Sprintf("pubchem: fault %s: %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return msg
}

// Is reports whether target is one of the domain categories this fault belongs to.
func (e *FaultError) Is(target error) bool {
	switch target {
	case domain.ErrRemoteFault:
		return true
	case domain.ErrNotFound:
		return e.Code == FaultNotFound
	}
	return false
}

// BadRequest reports whether the fault is PUGREST.BadRequest.
func (e *FaultError) BadRequest() bool { return e.Code == FaultBadRequest }

// DecodeError reports a response that could not be turned into a result:
// invalid JSON, or a compound record missing a field the lookup needs.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pubchem: decode: %s: %v", e.Reason, e.Err)
	}
	return "pubchem: decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches domain.ErrMalformedResponse.
func (e *DecodeError) Is(target error) bool { return target == domain.ErrMalformedResponse }

// StatusError is an HTTP error status whose body carried no usable envelope.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pubchem: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("pubchem: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Is matches domain.ErrUnavailable.
func (e *StatusError) Is(target error) bool { return target == domain.ErrUnavailable }
