package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/deltahq/delta/internal/domain"
)

// sectionHeadings is the fixed rendering order of the per-category sections.
var sectionHeadings = []struct {
	category domain.Category
	heading  string
}{
	{domain.CategoryFeatures, "🚀 New Features & Functionality"},
	{domain.CategoryImprovements, "✨ Improvements & Enhancements"},
	{domain.CategoryFixes, "🐛 Bug Fixes & Patches"},
	{domain.CategoryRefactoring, "🔧 Code Quality & Refactoring"},
	{domain.CategoryDependencies, "📦 Dependencies & Packages"},
	{domain.CategoryTesting, "🧪 Testing & Quality Assurance"},
	{domain.CategoryDocumentation, "📚 Documentation & Guides"},
	{domain.CategoryConfiguration, "⚙️ Configuration & Setup"},
	{domain.CategoryOther, "📝 Other Changes"},
}

var foundationKeywords = []string{"initial", "first", "setup", "init"}

const (
	releaseDate = "January 2, 2006"
	bulletDate  = "Jan 2"
)

// renderFallback formats the analysis as Markdown without any external call.
// It must not fail for a non-empty commit list.
func renderFallback(title string, in ComposeInput, a domain.CommitAnalysis, months []domain.MonthGroup, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Release Date:** %s\n\n", now.Format(releaseDate))
	fmt.Fprintf(&b, "*This release includes %d commits from %d %s over %d %s.*\n\n",
		len(in.Commits),
		len(a.Authors), plural(len(a.Authors), "contributor"),
		len(months), plural(len(months), "month"),
	)

	for _, m := range months {
		fmt.Fprintf(&b, "## 📅 %s\n\n", m.Label)
		renderMonth(&b, m)
		b.WriteString("---\n\n")
	}

	b.WriteString(insightsFooter(len(in.Commits), a, len(months), now, false))
	return b.String()
}

// isSparseMonth reports whether a month gets one consolidated section instead
// of a per-category breakdown.
func isSparseMonth(m domain.MonthGroup, a domain.CommitAnalysis) bool {
	return len(m.Commits) <= 5 && a.CategorizedCount() <= 3 && len(a.NonEmptyCategories()) <= 1
}

func renderMonth(b *strings.Builder, m domain.MonthGroup) {
	a := Analyze(m.Commits)
	n := len(m.Commits)

	if isSparseMonth(m, a) {
		fmt.Fprintf(b, "*%d %s establishing the project foundation*\n\n", n, plural(n, "commit"))

		if hasFoundationCommit(m.Commits) {
			b.WriteString("### 🎯 Project Foundation\n")
			b.WriteString("- Project initialization and repository setup\n")
			b.WriteString("- Initial codebase structure established\n")
			if n > 1 {
				k := len(a.Authors)
				fmt.Fprintf(b, "- %d foundational commits by %d %s\n", n, k, plural(k, "contributor"))
			}
			b.WriteString("\n")
			return
		}

		b.WriteString("### 📝 Development Activity\n")
		for _, c := range m.Commits {
			writeBullet(b, c)
		}
		b.WriteString("\n")
		return
	}

	total := a.CategorizedCount()
	fmt.Fprintf(b, "*%d commits bringing %d notable changes this month*\n\n", n, total)

	if total == 0 {
		k := len(a.Authors)
		b.WriteString("### 📝 Development Activity\n")
		fmt.Fprintf(b, "- %d commits with various improvements and maintenance\n", n)
		fmt.Fprintf(b, "- Active development by %d %s\n\n", k, plural(k, "contributor"))
		return
	}

	byCategory := make(map[domain.Category][]domain.Commit)
	for _, c := range m.Commits {
		if cat, ok := Classify(c.Message); ok {
			byCategory[cat] = append(byCategory[cat], c)
		}
	}

	for _, s := range sectionHeadings {
		commits := byCategory[s.category]
		if len(commits) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n", s.heading)
		for _, c := range commits {
			writeBullet(b, c)
		}
		b.WriteString("\n")
	}
}

func writeBullet(b *strings.Builder, c domain.Commit) {
	fmt.Fprintf(b, "- %s *(%s)*\n", c.Subject(), c.CommittedAt.UTC().Format(bulletDate))
}

func hasFoundationCommit(commits []domain.Commit) bool {
	for _, c := range commits {
		if containsAny(strings.ToLower(c.Message), foundationKeywords) {
			return true
		}
	}
	return false
}

// insightsFooter renders the "Generation Insights" block appended to every changelog.
func insightsFooter(commits int, a domain.CommitAnalysis, months int, now time.Time, generated bool) string {
	var b strings.Builder
	b.WriteString("### 📊 Generation Insights\n")
	fmt.Fprintf(&b, "- **Total Commits Analyzed:** %d\n", commits)
	fmt.Fprintf(&b, "- **Active Contributors:** %d\n", len(a.Authors))
	fmt.Fprintf(&b, "- **Development Period:** %d %s\n", months, plural(months, "month"))
	fmt.Fprintf(&b, "- **Activity Level:** %s\n", ActivityLevel(a.CommitFrequency))
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", now.Format("January 2, 2006, 03:04 PM"))
	if generated {
		b.WriteString("*This changelog was intelligently generated using AI analysis of commit patterns and development activity.*")
	} else {
		b.WriteString("*This changelog was generated with enhanced pattern analysis (service unavailable).*")
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
