// Package pubchem resolves chemical names and formulas against the PubChem
// PUG REST API, polling deferred (ListKey) results until they are ready.
package pubchem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

// DefaultBaseURL is the PUG REST root.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

const (
	defaultPollInterval = 2 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	maxBodyBytes        = 8 << 20
	maxErrorBodyBytes   = 512
)

// Options configures a Client. Zero values fall back to package defaults,
// except MaxPollAttempts where <= 0 means unbounded.
type Options struct {
	BaseURL         string
	UserAgent       string
	RequestTimeout  time.Duration // <= 0 disables the per-request timeout
	RetryBackoff    time.Duration
	PollInterval    time.Duration
	MaxPollAttempts int
	Breaker         *gobreaker.CircuitBreaker // nil disables the breaker
}

// Client talks to PubChem PUG REST.
type Client struct {
	baseURL         string
	userAgent       string
	httpClient      *http.Client
	retryBackoff    time.Duration
	pollInterval    time.Duration
	maxPollAttempts int
	breaker         *gobreaker.CircuitBreaker
	log             *slog.Logger

	// sleep waits between poll attempts and before a retry.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	hc := &http.Client{}
	if opts.RequestTimeout > 0 {
		hc.Timeout = opts.RequestTimeout
	}

	return &Client{
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		userAgent:       opts.UserAgent,
		httpClient:      hc,
		retryBackoff:    opts.RetryBackoff,
		pollInterval:    opts.PollInterval,
		maxPollAttempts: opts.MaxPollAttempts,
		breaker:         opts.Breaker,
		log:             logger.With("adapter", "pubchem"),
		sleep:           sleepCtx,
	}
}

// ResolveByFormula looks up a compound by molecular formula.
// The returned Name is the record's IUPAC name (or domain.Unknown); the
// Formula is the input, echoed.
//
// When no compound is produced the result is nil and the error says why:
// *FaultError, *DecodeError, domain.ErrNotFound, or a transport error
// matching domain.ErrUnavailable. Every such failure is logged here.
func (c *Client) ResolveByFormula(ctx context.Context, formula string) (*domain.Compound, error) {
	return c.resolve(ctx, byFormula, formula)
}

// ResolveByName looks up a compound by name.
// The returned Name is the input, echoed; the Formula is the record's
// molecular formula (or domain.Unknown). Failures as for ResolveByFormula.
func (c *Client) ResolveByName(ctx context.Context, name string) (*domain.Compound, error) {
	return c.resolve(ctx, byName, name)
}

func (c *Client) resolve(ctx context.Context, l lookup, term string) (*domain.Compound, error) {
	c.log.DebugContext(ctx, "pubchem request", slog.String("by", l.name), slog.String("query", term))

	env, err := c.get(ctx, l.url(c.baseURL, term))
	if err != nil {
		c.log.ErrorContext(ctx, "pubchem request failed",
			slog.String("by", l.name),
			slog.String("query", term),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	resp := env.classify(true)
	switch resp.kind {
	case kindWaiting:
		c.log.InfoContext(ctx, "pubchem result deferred",
			slog.String("by", l.name),
			slog.String("list_key", resp.listKey),
		)
		return c.PollForResult(ctx, resp.listKey)

	case kindFault:
		c.logFault(ctx, l.name, term, resp.fault)
		return nil, resp.fault

	case kindCompounds:
		compound, err := l.build(term, resp.compound)
		if err != nil {
			c.log.ErrorContext(ctx, "pubchem record unusable",
				slog.String("by", l.name),
				slog.String("query", term),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		c.log.DebugContext(ctx, "pubchem response",
			slog.String("by", l.name),
			slog.String("name", compound.Name),
			slog.String("formula", compound.Formula),
		)
		return compound, nil

	default:
		c.log.DebugContext(ctx, "pubchem returned no compounds",
			slog.String("by", l.name),
			slog.String("query", term),
		)
		return nil, fmt.Errorf("pubchem: %s %q: %w", l.name, term, domain.ErrNotFound)
	}
}

func (c *Client) logFault(ctx context.Context, by, term string, f *FaultError) {
	level := slog.LevelWarn
	if f.BadRequest() {
		level = slog.LevelError
	}
	c.log.Log(ctx, level, "pubchem fault",
		slog.String("by", by),
		slog.String("query", term),
		slog.String("code", f.Code),
		slog.String("message", f.Message),
	)
}

// get performs a GET and decodes the envelope. The body is decoded
// whatever the status: PubChem sends Fault bodies with 4xx codes and
// Waiting bodies with 202.
func (c *Client) get(ctx context.Context, rawURL string) (*apiEnvelope, error) {
	body, status, err := c.execute(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		if status >= http.StatusBadRequest {
			return nil, &StatusError{StatusCode: status, Body: snippet(body)}
		}
		return nil, err
	}
	return env, nil
}

// execute runs a request through the circuit breaker, if one is configured.
func (c *Client) execute(ctx context.Context, rawURL string) ([]byte, int, error) {
	if c.breaker == nil {
		return c.do(ctx, rawURL)
	}

	var status int
	out, err := c.breaker.Execute(func() (interface{}, error) {
		body, st, err := c.do(ctx, rawURL)
		status = st
		return body, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, 0, fmt.Errorf("pubchem: circuit %s: %w: %w", c.breaker.Name(), domain.ErrUnavailable, err)
		}
		return nil, status, err
	}
	return out.([]byte), status, nil
}

// do sends one GET (with a single retry) and reads the body.
// A 5xx after the retry is a *StatusError.
func (c *Client) do(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("pubchem: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("pubchem: request: %w", ctxErr)
		}
		return nil, 0, fmt.Errorf("pubchem: request failed: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("pubchem: read body: %w: %w", domain.ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Body: snippet(body)}
	}

	return body, resp.StatusCode, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "pubchem retry", slog.String("url", req.URL.String()), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := c.sleep(ctx, c.retryBackoff); err != nil {
		return nil, err
	}

	return c.httpClient.Do(req)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		s = s[:maxErrorBodyBytes] + "..."
	}
	return s
}
