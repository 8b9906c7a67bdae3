package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrRemoteFault, ErrMalformedResponse, ErrUnavailable}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", ErrNotFound, "not_found"},
		{"wrapped fault", fmt.Errorf("pubchem: %w", ErrRemoteFault), "fault"},
		{"decode", fmt.Errorf("x: %w", ErrMalformedResponse), "decode"},
		{"unavailable", ErrUnavailable, "unavailable"},
		{"other", context.Canceled, "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FailureReason(tt.err); got != tt.want {
				t.Errorf("FailureReason(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
