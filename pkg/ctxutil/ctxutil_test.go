package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestIDFromCtx(ctx); got != "abc" {
		t.Errorf("RequestIDFromCtx = %q, want %q", got, "abc")
	}
}

func TestRequestIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("RequestIDFromCtx = %q, want empty", got)
	}
}

func TestWithNewRequestID(t *testing.T) {
	t.Parallel()

	ctx, id := WithNewRequestID(context.Background())
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("request id %q is not a UUID: %v", id, err)
	}
	if got := RequestIDFromCtx(ctx); got != id {
		t.Errorf("RequestIDFromCtx = %q, want %q", got, id)
	}

	_, other := WithNewRequestID(context.Background())
	if other == id {
		t.Error("consecutive request ids should differ")
	}
}
