package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deltahq/delta/internal/app"
	"github.com/deltahq/delta/internal/config"
	"github.com/deltahq/delta/internal/service/changelog"
)

type previewOptions struct {
	repo  string
	limit int
	noAI  bool
	meta  bool
}

func newPreviewCmd() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview --repo owner/name",
		Short: "Print a changelog for a repository without storing it",
		Long: "Fetches the latest commits of a GitHub repository and prints the composed\n" +
			"Markdown to stdout. GITHUB_TOKEN is used when set; public repositories\n" +
			"work without it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository as owner/name")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "number of commits to fetch (default from GITHUB_COMMIT_LIMIT)")
	cmd.Flags().BoolVar(&opts.noAI, "no-ai", false, "skip the language model and use the template renderer")
	cmd.Flags().BoolVar(&opts.meta, "meta", false, "print title and version before the content")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

func runPreview(cmd *cobra.Command, opts previewOptions) error {
	owner, name, ok := strings.Cut(strings.TrimSpace(opts.repo), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("--repo must be owner/name, got %q", opts.repo)
	}

	cfg, err := config.LoadPreview()
	if err != nil {
		return err
	}
	if opts.noAI {
		cfg.LLM.Provider = config.ProviderNone
	}
	logger := app.NewLogger(cfg.Log)

	res, err := app.Preview(cmd.Context(), cfg, changelog.PreviewInput{
		Owner: owner,
		Repo:  name,
		Token: os.Getenv("GITHUB_TOKEN"),
		Limit: opts.limit,
	}, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.meta {
		fmt.Fprintf(out, "# %s (%s)\n", res.Title, res.Version)
		if res.Degraded {
			fmt.Fprintln(out, "<!-- generated without a language model -->")
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, res.Content)
	return nil
}
