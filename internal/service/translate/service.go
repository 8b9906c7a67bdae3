// Package translate turns raw user input into a compound lookup and a View.
package translate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/chemtrans/internal/domain"
	"github.com/heartmarshall/chemtrans/pkg/ctxutil"
)

type compoundResolver interface {
	ResolveByFormula(ctx context.Context, formula string) (*domain.Compound, error)
	ResolveByName(ctx context.Context, name string) (*domain.Compound, error)
}

// Service orchestrates a single lookup: validation, the session guard,
// classification, resolution and formatting.
type Service struct {
	log      *slog.Logger
	resolver compoundResolver
}

// NewService creates a new translate service.
func NewService(logger *slog.Logger, resolver compoundResolver) *Service {
	return &Service{
		log:      logger.With("service", "translate"),
		resolver: resolver,
	}
}

// Translate looks raw up and returns what to show.
//
// Empty input and a busy session are answered without a network call. Every
// lookup failure collapses to a not_found view; the resolver has already
// logged the cause. The session is released on return, panics included.
// A nil sess gets a fresh one-off session.
func (s *Service) Translate(ctx context.Context, sess *Session, raw string) View {
	query := strings.TrimSpace(raw)
	if query == "" {
		return View{Kind: KindEmptyInput, Message: MsgEmptyInput}
	}

	if sess == nil {
		sess = NewSession(nil)
	}
	if !sess.begin() {
		s.log.DebugContext(ctx, "lookup rejected, session busy", slog.String("query", query))
		return View{Kind: KindBusy, Message: MsgBusy}
	}
	defer sess.end()

	start := time.Now()
	ctx, requestID := ctxutil.WithNewRequestID(ctx)
	kind := domain.ClassifyInput(query)

	s.log.DebugContext(ctx, "lookup started",
		slog.String("query", query),
		slog.String("query_kind", kind.String()),
	)

	var (
		compound *domain.Compound
		err      error
	)
	switch kind {
	case domain.QueryFormula:
		compound, err = s.resolver.ResolveByFormula(ctx, query)
	default:
		compound, err = s.resolver.ResolveByName(ctx, query)
	}

	var view View
	if err != nil || compound == nil {
		view = notFoundView(query, kind)
		s.log.DebugContext(ctx, "lookup finished",
			slog.String("outcome", string(view.Kind)),
			slog.String("reason", domain.FailureReason(err)),
			slog.Duration("duration", time.Since(start)),
		)
	} else {
		view = resultView(query, kind, compound)
		s.log.DebugContext(ctx, "lookup finished",
			slog.String("outcome", string(view.Kind)),
			slog.String("name", view.Name),
			slog.String("formula", view.Formula),
			slog.Duration("duration", time.Since(start)),
		)
	}
	view.RequestID = requestID

	return view
}
