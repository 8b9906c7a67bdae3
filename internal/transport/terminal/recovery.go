package terminal

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/heartmarshall/chemtrans/internal/service/translate"
)

// recoverLookup recovers a panic raised by a lookup, logs it with a stack
// trace and renders the not-found message in its place.
func (r *REPL) recoverLookup(ctx context.Context, line string) {
	if err := recover(); err != nil {
		r.log.ErrorContext(ctx, "panic recovered",
			slog.Any("error", err),
			slog.String("stack", string(debug.Stack())),
			slog.String("query", line),
		)
		if rerr := r.renderer.Render(translate.View{Kind: translate.KindNotFound, Message: translate.MsgNotFound}); rerr != nil {
			r.log.ErrorContext(ctx, "render failed", slog.String("error", rerr.Error()))
		}
	}
}
