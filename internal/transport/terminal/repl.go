// Package terminal is the command-line surface: prompt drivers, output
// rendering, the loading indicator and the lookup loop.
package terminal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/chemtrans/internal/service/translate"
)

type translator interface {
	Translate(ctx context.Context, sess *translate.Session, raw string) translate.View
}

// REPLConfig configures a REPL.
type REPLConfig struct {
	Prompt   string
	Greeting string // shown once before the first prompt, if set
	// Async runs each lookup on its own goroutine so the prompt stays live
	// and a second entry is answered with the busy message. Without it
	// lookups run one after another, which suits piped input.
	Async bool
}

// REPL is the interactive lookup loop.
type REPL struct {
	log      *slog.Logger
	svc      translator
	driver   PromptDriver
	renderer *Renderer
	sess     *translate.Session
	cfg      REPLConfig

	wg sync.WaitGroup
}

// NewREPL creates a REPL. sess carries the loading callback; a nil sess
// gets a plain one.
func NewREPL(
	logger *slog.Logger,
	svc translator,
	driver PromptDriver,
	renderer *Renderer,
	sess *translate.Session,
	cfg REPLConfig,
) *REPL {
	if sess == nil {
		sess = translate.NewSession(nil)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "Chemical name or formula:"
	}
	return &REPL{
		log:      logger.With("transport", "terminal"),
		svc:      svc,
		driver:   driver,
		renderer: renderer,
		sess:     sess,
		cfg:      cfg,
	}
}

// Run reads input until exit, quit, EOF, an interrupt or ctx is done, then
// waits for lookups still in flight. A driver that is an io.Closer is closed
// on return. Only prompt failures are returned.
func (r *REPL) Run(ctx context.Context) error {
	defer r.wg.Wait()
	if c, ok := r.driver.(io.Closer); ok {
		defer c.Close()
	}

	if r.cfg.Greeting != "" {
		if err := r.driver.Info(ctx, r.cfg.Greeting); err != nil {
			return err
		}
	}

	for {
		line, err := r.driver.Input(ctx, InputConfig{
			Message: r.cfg.Prompt,
			Help:    "Enter a name (water) or a formula (H2O). Type exit to quit.",
		})
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, ErrAborted), ctx.Err() != nil:
			r.log.DebugContext(ctx, "prompt closed", slog.String("reason", err.Error()))
			return nil
		default:
			return err
		}

		if isExit(line) {
			return nil
		}

		if !r.cfg.Async {
			r.lookup(ctx, line)
			continue
		}

		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.lookup(ctx, line)
		}()
	}
}

func (r *REPL) lookup(ctx context.Context, line string) {
	defer r.recoverLookup(ctx, line)

	view := r.svc.Translate(ctx, r.sess, line)
	if err := r.renderer.Render(view); err != nil {
		r.log.ErrorContext(ctx, "render failed", slog.String("error", err.Error()))
	}
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
