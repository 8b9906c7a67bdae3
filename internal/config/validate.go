package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.PubChem.validate(); err != nil {
		return fmt.Errorf("pubchem: %w", err)
	}
	if err := c.Poll.validate(); err != nil {
		return fmt.Errorf("poll: %w", err)
	}
	if !c.Breaker.Disabled && c.Breaker.ConsecutiveFailures == 0 {
		return fmt.Errorf("breaker: consecutive_failures must be > 0 unless disabled")
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output: format must be one of %s (got %q)", strings.Join(OutputFormats, ", "), c.Output.Format)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (p *PubChemConfig) validate() error {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", p.BaseURL)
	}
	p.BaseURL = strings.TrimRight(p.BaseURL, "/")

	if p.RetryBackoff < 0 {
		return fmt.Errorf("retry_backoff must be >= 0 (got %v)", p.RetryBackoff)
	}
	return nil
}

func (p *PollConfig) validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", p.Interval)
	}
	return nil
}
