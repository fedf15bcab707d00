package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/deltahq/delta/internal/adapter/llm"
	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/domain"
)

type textGenerator interface {
	Generate(ctx context.Context, p llm.Prompt) (string, error)
}

// ComposeInput is the commit range and repository metadata to describe.
type ComposeInput struct {
	Commits      []domain.Commit
	RepoName     string
	RepoFullName string
	RepoURL      string
	IsPrivate    bool
}

// ComposeResult is a rendered changelog. Degraded is set when the text
// generator was skipped or failed and the deterministic formatter was used.
type ComposeResult struct {
	Title    string
	Version  string
	Content  string
	Degraded bool
}

// Composer turns commits into changelog Markdown. It holds no per-call state
// and is safe for concurrent use.
type Composer struct {
	gen         textGenerator
	timeout     time.Duration
	maxTokens   int
	temperature float64
	now         func() time.Time
	log         *slog.Logger
}

// NewComposer creates a Composer. gen may be nil, in which case every call
// uses the deterministic formatter.
func NewComposer(log *slog.Logger, gen textGenerator, cfg config.LLMConfig) *Composer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Composer{
		gen:         gen,
		timeout:     timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		now:         time.Now,
		log:         log.With("component", "composer"),
	}
}

// Version formats the release tag for a generation time.
func Version(t time.Time) string {
	return fmt.Sprintf("v%04d.%02d.%02d", t.Year(), int(t.Month()), t.Day())
}

// Compose renders a changelog for a non-empty commit list. The text generator
// is called at most once; any failure falls back to the deterministic
// formatter, so the only error is ErrNoCommits.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) (ComposeResult, error) {
	if len(in.Commits) == 0 {
		return ComposeResult{}, domain.ErrNoCommits
	}

	now := c.now()
	version := Version(now)
	title := fmt.Sprintf("%s - %s", in.RepoName, version)

	analysis := Analyze(in.Commits)
	months := GroupByMonth(in.Commits)

	res := ComposeResult{Title: title, Version: version}

	if c.gen != nil {
		text, err := c.generate(ctx, in, version, analysis, months)
		if err == nil {
			res.Content = text + "\n\n---\n\n" + insightsFooter(len(in.Commits), analysis, len(months), c.now(), true)
			return res, nil
		}
		c.log.WarnContext(ctx, "text generation failed, using fallback",
			slog.String("repo", in.RepoFullName),
			slog.String("error", err.Error()),
		)
	}

	res.Content = renderFallback(title, in, analysis, months, now)
	res.Degraded = true
	return res, nil
}

func (c *Composer) generate(ctx context.Context, in ComposeInput, version string, a domain.CommitAnalysis, months []domain.MonthGroup) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := llm.Prompt{
		System:      systemPrompt,
		User:        buildPrompt(in, version, a, months),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := c.gen.Generate(ctx, prompt)
		done <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("text generation: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		if strings.TrimSpace(r.text) == "" {
			return "", llm.ErrEmptyCompletion
		}
		return r.text, nil
	}
}
