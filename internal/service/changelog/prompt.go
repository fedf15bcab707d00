package changelog

import (
	"fmt"
	"strings"

	"github.com/deltahq/delta/internal/domain"
)

const systemPrompt = "You are an expert technical writer and software development analyst. " +
	"You excel at interpreting commit data, understanding development patterns, and creating " +
	"compelling changelogs that tell the story of a project's evolution. You have the creative " +
	"freedom to infer meaning from vague commits and present information in the most " +
	"user-friendly way possible."

// promptPatternLabels is the order and wording of the pattern counts in the prompt.
var promptPatternLabels = []struct {
	category domain.Category
	label    string
}{
	{domain.CategoryFeatures, "Features/New Functionality"},
	{domain.CategoryFixes, "Bug Fixes/Patches"},
	{domain.CategoryImprovements, "Improvements/Enhancements"},
	{domain.CategoryRefactoring, "Code Refactoring"},
	{domain.CategoryDependencies, "Dependencies/Packages"},
	{domain.CategoryTesting, "Testing"},
	{domain.CategoryDocumentation, "Documentation"},
	{domain.CategoryConfiguration, "Configuration"},
}

const promptDate = "1/2/2006"

// buildPrompt renders the user prompt for the text generator.
func buildPrompt(in ComposeInput, version string, a domain.CommitAnalysis, months []domain.MonthGroup) string {
	var b strings.Builder
	sparse := IsSparseRepo(in.Commits, a)

	b.WriteString("You are an expert technical writer and software development analyst creating a changelog for a repository. ")
	b.WriteString("Your task is to analyze commits and create a meaningful, user-focused changelog that tells the story of the project's evolution.\n\n")

	b.WriteString("Repository Context:\n")
	fmt.Fprintf(&b, "- Name: %s\n", in.RepoName)
	fmt.Fprintf(&b, "- Full Name: %s\n", in.RepoFullName)
	visibility := "Public"
	if in.IsPrivate {
		visibility = "Private"
	}
	fmt.Fprintf(&b, "- Type: %s repository\n", visibility)
	if in.RepoURL != "" {
		fmt.Fprintf(&b, "- URL: %s\n", in.RepoURL)
	}

	authors := distinctAuthors(in.Commits)
	shown := authors
	if len(shown) > 3 {
		shown = shown[:3]
	}
	more := ""
	if len(authors) > 3 {
		more = "..."
	}
	repoType := "Active Development"
	if sparse {
		repoType = "Early Stage/Limited Activity"
	}

	b.WriteString("\nCommit Analysis Summary:\n")
	fmt.Fprintf(&b, "- Total Commits: %d\n", len(in.Commits))
	fmt.Fprintf(&b, "- Active Contributors: %d (%s%s)\n", len(a.Authors), strings.Join(shown, ", "), more)
	fmt.Fprintf(&b, "- Time Period: %s to %s\n",
		a.TimeSpread.Earliest.UTC().Format(promptDate), a.TimeSpread.Latest.UTC().Format(promptDate))
	fmt.Fprintf(&b, "- Development Activity: %s\n", ActivityLevel(a.CommitFrequency))
	fmt.Fprintf(&b, "- Repository Type: %s\n", repoType)

	b.WriteString("\nPattern Analysis:\n")
	for _, p := range promptPatternLabels {
		if n := len(a.Patterns[p.category]); n > 0 {
			fmt.Fprintf(&b, "- %s: %d commits\n", p.label, n)
		}
	}

	b.WriteString("\nRaw Commit Data by Month:\n")
	for i, m := range months {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%s** (%d commits):\n", m.Label, len(m.Commits))
		for j, c := range m.Commits {
			fmt.Fprintf(&b, "  %d. %q (%s, %s)\n", j+1, c.Subject(), c.AuthorName, c.CommittedAt.UTC().Format(promptDate))
		}
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	if sparse {
		b.WriteString("This is an EARLY-STAGE repository with limited commits. Create a concise, focused changelog that:\n\n")
		b.WriteString("1. **Keep it Simple**: Don't create empty sections or forced categories\n")
		b.WriteString("2. **Focus on Reality**: If there are only initial commits, call it what it is - project foundation/setup\n")
		b.WriteString("3. **Be Honest**: Don't over-embellish limited activity\n")
		b.WriteString("4. **Consolidate**: Group all related commits into meaningful, substantial sections\n")
		b.WriteString("5. **NO EMPTY SECTIONS**: Only create sections that have actual content\n\n")
		b.WriteString("For sparse repos, prefer a simpler structure:\n")
		fmt.Fprintf(&b, "- Start with: # %s - %s\n", in.RepoName, version)
		b.WriteString("- Brief introduction about the project's current state\n")
		b.WriteString("- ## 📅 [Month Year] with a single comprehensive section about what was accomplished\n")
		b.WriteString("- Focus on the foundation/setup rather than trying to create multiple categories\n")
	} else {
		b.WriteString("You have complete creative freedom to interpret this data and create a compelling changelog. You should:\n\n")
		b.WriteString("1. **Infer Meaning**: Even if commit messages are vague, use context clues, patterns, and timing to infer what might have happened\n")
		b.WriteString("2. **Group Intelligently**: Combine related commits into logical features or improvements\n")
		b.WriteString("3. **Tell a Story**: Create a narrative about the project's development\n")
		b.WriteString("4. **Be User-Focused**: Translate technical commits into user-facing benefits\n")
		b.WriteString("5. **Handle Poor Commits**: When commit messages are unhelpful, group them by timing/author and create reasonable descriptions\n")
		b.WriteString("6. **Monthly Structure**: Organize by month with engaging subsections\n\n")
		b.WriteString("Structure Requirements:\n")
		fmt.Fprintf(&b, "- Start with: # %s - %s\n", in.RepoName, version)
		b.WriteString("- Use monthly groupings: ## 📅 [Month Year]\n")
		b.WriteString("- Include engaging subsections with emojis (only when you have content for them)\n")
		b.WriteString("- Make it visually appealing and easy to read\n")
		b.WriteString("- Focus on impact and benefits, not just technical details\n")
	}

	b.WriteString("\nCRITICAL: Never create empty sections or section headers without content. ")
	b.WriteString("Only include sections that have actual commits or meaningful content to display.\n\n")
	b.WriteString("Be creative, insightful, and don't just repeat commit messages verbatim. ")
	b.WriteString("Generate meaningful content that tells the real story of this project's development!\n")

	return b.String()
}
