package domain

import "errors"

// Sentinel errors used across all layers.
//
// Every lookup failure ends up as exactly one of these. The translate
// service collapses all of them into the same user-facing message.
var (
	ErrNotFound          = errors.New("not found")
	ErrRemoteFault       = errors.New("remote fault")
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnavailable       = errors.New("service unavailable")
)

// FailureReason names the sentinel category of err for logs.
// Returns "" for a nil error and "unknown" for anything unclassified.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRemoteFault):
		return "fault"
	case errors.Is(err, ErrMalformedResponse):
		return "decode"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}
