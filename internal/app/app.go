package app

import (
	"log/slog"

	"github.com/heartmarshall/chemtrans/internal/adapter/provider/pubchem"
	"github.com/heartmarshall/chemtrans/internal/config"
	"github.com/heartmarshall/chemtrans/internal/service/translate"
)

// App holds the wired dependencies shared by every command.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	PubChem    *pubchem.Client
	Translator *translate.Service
}

// New wires the PubChem client and the translate service from cfg.
func New(cfg *config.Config, logger *slog.Logger) *App {
	client := NewPubChemClient(cfg, logger)

	logger.Debug("application wired",
		slog.String("version", BuildVersion()),
		slog.String("pubchem", cfg.PubChem.BaseURL),
		slog.Bool("breaker", !cfg.Breaker.Disabled),
		slog.Int("poll_max_attempts", cfg.Poll.MaxAttempts),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		PubChem:    client,
		Translator: translate.NewService(logger, client),
	}
}

// NewPubChemClient builds a PubChem client, with its circuit breaker, from cfg.
func NewPubChemClient(cfg *config.Config, logger *slog.Logger) *pubchem.Client {
	return pubchem.NewClient(pubchem.Options{
		BaseURL:         cfg.PubChem.BaseURL,
		UserAgent:       UserAgent(cfg.PubChem.UserAgent),
		RequestTimeout:  cfg.PubChem.RequestTimeout,
		RetryBackoff:    cfg.PubChem.RetryBackoff,
		PollInterval:    cfg.Poll.Interval,
		MaxPollAttempts: cfg.Poll.MaxAttempts,
		Breaker:         pubchem.NewCircuitBreaker("pubchem", cfg.Breaker, logger),
	}, logger)
}
