package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deltahq/delta/internal/adapter/github"
	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/service/changelog"
)

// Preview composes a changelog for a repository straight from GitHub without
// touching a store. It backs `delta preview`.
func Preview(ctx context.Context, cfg *config.PreviewConfig, input changelog.PreviewInput, logger *slog.Logger) (changelog.ComposeResult, error) {
	gen, err := NewGenerator(cfg.LLM, logger)
	if err != nil {
		return changelog.ComposeResult{}, fmt.Errorf("llm: %w", err)
	}

	gh := github.New(cfg.GitHub, config.AuthConfig{}, logger)
	composer := changelog.NewComposer(logger, gen, cfg.LLM)
	svc := changelog.NewService(logger, nil, nil, nil, nil, gh, nil, composer, cfg.GitHub.CommitLimit)

	return svc.Preview(ctx, input)
}
