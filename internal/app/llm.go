package app

import (
	"fmt"
	"log/slog"

	"github.com/deltahq/delta/internal/adapter/llm"
	"github.com/deltahq/delta/internal/adapter/llm/anthropic"
	"github.com/deltahq/delta/internal/adapter/llm/openai"
	"github.com/deltahq/delta/internal/config"
)

// NewGenerator builds the configured text generator behind a circuit
// breaker. It returns nil when generation is disabled, in which case the
// composer always uses the deterministic formatter.
func NewGenerator(cfg config.LLMConfig, logger *slog.Logger) (llm.Generator, error) {
	if !cfg.Enabled() {
		logger.Info("text generation disabled, using deterministic changelogs")
		return nil, nil
	}

	var (
		gen llm.Generator
		err error
	)
	switch cfg.Provider {
	case config.ProviderAnthropic:
		gen, err = anthropic.New(cfg.APIKey, cfg.BaseURL, cfg.ModelName())
	case config.ProviderOpenAI:
		gen, err = openai.New(cfg.APIKey, cfg.BaseURL, cfg.ModelName())
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("text generation enabled",
		slog.String("provider", cfg.Provider),
		slog.String("model", cfg.ModelName()))

	return llm.NewBreaker(gen, llm.BreakerSettings{
		Name:     cfg.Provider,
		Failures: cfg.BreakerFailures,
		Cooldown: cfg.BreakerCooldown,
	}, logger), nil
}
