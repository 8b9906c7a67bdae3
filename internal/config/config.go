package config

import "time"

// Config is the root application configuration.
type Config struct {
	PubChem PubChemConfig `yaml:"pubchem"`
	Poll    PollConfig    `yaml:"poll"`
	Breaker BreakerConfig `yaml:"breaker"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// PubChemConfig holds settings for the PubChem PUG REST client.
type PubChemConfig struct {
	BaseURL string `yaml:"base_url" env:"PUBCHEM_BASE_URL" env-default:"https://pubchem.ncbi.nlm.nih.gov/rest/pug"`
	// RequestTimeout bounds each HTTP request. A negative value disables it
	// (zero is replaced by the default).
	RequestTimeout time.Duration `yaml:"request_timeout" env:"PUBCHEM_REQUEST_TIMEOUT" env-default:"30s"`
	RetryBackoff   time.Duration `yaml:"retry_backoff"   env:"PUBCHEM_RETRY_BACKOFF"   env-default:"500ms"`
	UserAgent      string        `yaml:"user_agent"      env:"PUBCHEM_USER_AGENT"      env-default:"chemtrans"`
}

// PollConfig controls how deferred (ListKey) results are polled.
type PollConfig struct {
	Interval time.Duration `yaml:"interval"     env:"POLL_INTERVAL"     env-default:"2s"`
	// MaxAttempts caps poll requests per lookup. A value <= 0 polls
	// until the remote side answers or the context ends (in YAML use a
	// negative value, since zero is replaced by the default).
	MaxAttempts int `yaml:"max_attempts" env:"POLL_MAX_ATTEMPTS" env-default:"60"`
}

// BreakerConfig holds circuit breaker settings for outbound PubChem calls.
type BreakerConfig struct {
	Disabled            bool          `yaml:"disabled"             env:"BREAKER_DISABLED"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures" env:"BREAKER_CONSECUTIVE_FAILURES" env-default:"3"`
	OpenTimeout         time.Duration `yaml:"open_timeout"         env:"BREAKER_OPEN_TIMEOUT"         env-default:"30s"`
}

// OutputConfig selects how lookup results are printed.
type OutputConfig struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"text"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// OutputFormats lists the accepted values of OutputConfig.Format.
var OutputFormats = []string{"text", "json", "yaml", "html"}
