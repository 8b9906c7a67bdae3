package pubchem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

// PollForResult re-queries a deferred result by its ListKey until PubChem
// returns a compound record, a fault, or an error.
//
// While the response says Waiting, it sleeps the poll interval and asks
// again, up to the configured attempt cap (ErrPollExhausted). A ready record
// yields both the IUPAC name and the molecular formula, each defaulting to
// domain.Unknown. Faults, transport and decode errors end the loop at once.
func (c *Client) PollForResult(ctx context.Context, listKey string) (*domain.Compound, error) {
	u := byListKey.url(c.baseURL, listKey)

	for attempt := 1; ; attempt++ {
		env, err := c.get(ctx, u)
		if err != nil {
			c.log.ErrorContext(ctx, "pubchem poll failed",
				slog.String("list_key", listKey),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return nil, err
		}

		resp := env.classify(false)
		switch resp.kind {
		case kindCompounds:
			compound, err := byListKey.build(listKey, resp.compound)
			if err != nil {
				c.log.ErrorContext(ctx, "pubchem record unusable",
					slog.String("list_key", listKey),
					slog.String("error", err.Error()),
				)
				return nil, err
			}
			c.log.DebugContext(ctx, "pubchem poll ready",
				slog.String("list_key", listKey),
				slog.Int("attempts", attempt),
			)
			return compound, nil

		case kindFault:
			c.logFault(ctx, byListKey.name, listKey, resp.fault)
			return nil, resp.fault

		case kindEmpty:
			c.log.WarnContext(ctx, "pubchem poll returned no compounds",
				slog.String("list_key", listKey),
				slog.Int("attempt", attempt),
			)
			return nil, fmt.Errorf("pubchem: listkey %s: %w", listKey, domain.ErrNotFound)
		}

		if c.maxPollAttempts > 0 && attempt >= c.maxPollAttempts {
			c.log.WarnContext(ctx, "pubchem poll gave up",
				slog.String("list_key", listKey),
				slog.Int("attempts", attempt),
			)
			return nil, fmt.Errorf("listkey %s after %d attempts: %w", listKey, attempt, ErrPollExhausted)
		}

		c.log.InfoContext(ctx, "waiting for pubchem result",
			slog.String("list_key", listKey),
			slog.Int("attempt", attempt),
			slog.Duration("interval", c.pollInterval),
		)
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, fmt.Errorf("pubchem: poll %s: %w", listKey, err)
		}
	}
}
