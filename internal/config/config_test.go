package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// validConfig returns a config equivalent to the env-default values.
func validConfig() *Config {
	return &Config{
		PubChem: PubChemConfig{
			BaseURL:        "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
			RequestTimeout: 30 * time.Second,
			RetryBackoff:   500 * time.Millisecond,
			UserAgent:      "chemtrans",
		},
		Poll:    PollConfig{Interval: 2 * time.Second, MaxAttempts: 60},
		Breaker: BreakerConfig{ConsecutiveFailures: 3, OpenTimeout: 30 * time.Second},
		Output:  OutputConfig{Format: "text"},
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

const validYAML = `
pubchem:
  base_url: "http://localhost:9999/rest/pug/"
  request_timeout: "5s"
  retry_backoff: "100ms"
  user_agent: "chemtrans-test"

poll:
  interval: "250ms"
  max_attempts: -1

breaker:
  disabled: true
  consecutive_failures: 5
  open_timeout: "1m"

output:
  format: "JSON"

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// PubChem
	if cfg.PubChem.BaseURL != "http://localhost:9999/rest/pug" {
		t.Errorf("pubchem.base_url = %q (trailing slash should be trimmed)", cfg.PubChem.BaseURL)
	}
	if cfg.PubChem.RequestTimeout != 5*time.Second {
		t.Errorf("pubchem.request_timeout = %v, want 5s", cfg.PubChem.RequestTimeout)
	}
	if cfg.PubChem.RetryBackoff != 100*time.Millisecond {
		t.Errorf("pubchem.retry_backoff = %v, want 100ms", cfg.PubChem.RetryBackoff)
	}
	if cfg.PubChem.UserAgent != "chemtrans-test" {
		t.Errorf("pubchem.user_agent = %q", cfg.PubChem.UserAgent)
	}

	// Poll
	if cfg.Poll.Interval != 250*time.Millisecond {
		t.Errorf("poll.interval = %v, want 250ms", cfg.Poll.Interval)
	}
	if cfg.Poll.MaxAttempts != -1 {
		t.Errorf("poll.max_attempts = %d, want -1", cfg.Poll.MaxAttempts)
	}

	// Breaker
	if !cfg.Breaker.Disabled {
		t.Error("breaker.disabled should be true")
	}
	if cfg.Breaker.ConsecutiveFailures != 5 {
		t.Errorf("breaker.consecutive_failures = %d, want 5", cfg.Breaker.ConsecutiveFailures)
	}
	if cfg.Breaker.OpenTimeout != time.Minute {
		t.Errorf("breaker.open_timeout = %v, want 1m", cfg.Breaker.OpenTimeout)
	}

	// Output is normalized to lower case.
	if cfg.Output.Format != "json" {
		t.Errorf("output.format = %q, want %q", cfg.Output.Format, "json")
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Poll.Interval != 250*time.Millisecond {
		t.Errorf("poll.interval = %v, want 250ms from CONFIG_PATH file", cfg.Poll.Interval)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("POLL_INTERVAL", "3s")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Poll.Interval != 3*time.Second {
		t.Errorf("poll.interval = %v, want 3s (ENV override)", cfg.Poll.Interval)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "error")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := validConfig()
	if cfg.PubChem != want.PubChem {
		t.Errorf("pubchem = %+v, want %+v", cfg.PubChem, want.PubChem)
	}
	if cfg.Poll != want.Poll {
		t.Errorf("poll = %+v, want %+v", cfg.Poll, want.Poll)
	}
	if cfg.Breaker != want.Breaker {
		t.Errorf("breaker = %+v, want %+v", cfg.Breaker, want.Breaker)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("output.format = %q, want text", cfg.Output.Format)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want warn/text", cfg.Log)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"relative base url", func(c *Config) { c.PubChem.BaseURL = "/rest/pug" }, "pubchem: base_url"},
		{"ftp base url", func(c *Config) { c.PubChem.BaseURL = "ftp://example.com" }, "pubchem: base_url"},
		{"negative retry backoff", func(c *Config) { c.PubChem.RetryBackoff = -time.Second }, "retry_backoff"},
		{"zero poll interval", func(c *Config) { c.Poll.Interval = 0 }, "poll: interval"},
		{"zero breaker threshold", func(c *Config) { c.Breaker.ConsecutiveFailures = 0 }, "breaker"},
		{"unknown output format", func(c *Config) { c.Output.Format = "xml" }, "output: format"},
		{"unknown log format", func(c *Config) { c.Log.Format = "logfmt" }, "log: format"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_BreakerDisabledIgnoresThreshold(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Breaker.Disabled = true
	cfg.Breaker.ConsecutiveFailures = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnboundedPolling(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Poll.MaxAttempts = -1
	cfg.PubChem.RequestTimeout = -1

	if err := cfg.Validate(); err != nil {
		t.Fatalf("negative max_attempts/request_timeout should be accepted: %v", err)
	}
}

func TestUsage_ListsEnvVars(t *testing.T) {
	t.Parallel()

	usage := Usage()
	for _, name := range []string{"PUBCHEM_BASE_URL", "POLL_INTERVAL", "POLL_MAX_ATTEMPTS", "OUTPUT_FORMAT", "LOG_LEVEL"} {
		if !strings.Contains(usage, name) {
			t.Errorf("usage does not mention %s", name)
		}
	}
}
