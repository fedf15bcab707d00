package changelog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/deltahq/delta/internal/domain"
)

// keywordRules is the ordered keyword table. The first rule with a matching
// substring decides the category.
var keywordRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryFeatures, []string{"feat", "add", "new", "implement", "create", "introduce"}},
	{domain.CategoryFixes, []string{"fix", "bug", "patch", "resolve", "correct"}},
	{domain.CategoryImprovements, []string{"improve", "enhance", "optimize", "update", "upgrade", "better"}},
	{domain.CategoryDocumentation, []string{"doc", "readme", "comment", "guide"}},
	{domain.CategoryTesting, []string{"test", "spec", "coverage"}},
	{domain.CategoryDependencies, []string{"dep", "package", "npm", "yarn", "install"}},
	{domain.CategoryConfiguration, []string{"config", "setup", "env", "settings"}},
	{domain.CategoryRefactoring, []string{"refactor", "clean", "reorganize", "restructure"}},
}

// noiseKeywords keep a message out of "other".
var noiseKeywords = []string{"merge", "bump", "version"}

// docsPrefix matches a "docs:" or "doc(scope):" subject. Such messages often
// say "update" or "add", which the keyword table would file earlier.
var docsPrefix = regexp.MustCompile(`^docs?(?:\([^)]*\))?!?:\s`)

// Classify returns the category of a commit message. The second result is
// false when the message is dropped as merge, bump or version noise (or is
// too short to say anything).
func Classify(message string) (domain.Category, bool) {
	lower := strings.ToLower(message)

	if docsPrefix.MatchString(lower) {
		return domain.CategoryDocumentation, true
	}

	for _, rule := range keywordRules {
		if containsAny(lower, rule.keywords) {
			return rule.category, true
		}
	}

	if containsAny(lower, noiseKeywords) || len(strings.TrimSpace(message)) <= 5 {
		return "", false
	}
	return domain.CategoryOther, true
}

// Analyze builds the pattern, author and time-spread projection of commits.
func Analyze(commits []domain.Commit) domain.CommitAnalysis {
	a := domain.CommitAnalysis{
		Patterns:        make(map[domain.Category][]string, len(domain.Categories)),
		Authors:         make(map[string]struct{}),
		CommitFrequency: len(commits),
	}

	for i, c := range commits {
		a.Authors[c.AuthorName] = struct{}{}

		if i == 0 || c.CommittedAt.Before(a.TimeSpread.Earliest) {
			a.TimeSpread.Earliest = c.CommittedAt
		}
		if i == 0 || c.CommittedAt.After(a.TimeSpread.Latest) {
			a.TimeSpread.Latest = c.CommittedAt
		}

		if cat, ok := Classify(c.Message); ok {
			a.Patterns[cat] = append(a.Patterns[cat], c.Message)
		}
	}

	return a
}

// GroupByMonth buckets commits by UTC calendar month, most recent month first.
// Commits keep their input order inside a bucket.
func GroupByMonth(commits []domain.Commit) []domain.MonthGroup {
	index := make(map[string]int)
	var groups []domain.MonthGroup

	for _, c := range commits {
		t := c.CommittedAt.UTC()
		key := t.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.MonthGroup{Key: key, Label: t.Format("January 2006")})
		}
		groups[i].Commits = append(groups[i].Commits, c)
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key > groups[j].Key })
	return groups
}

// IsSparseRepo reports whether the commit set is too small for a per-category
// breakdown. Both conditions measure the same count today; the threshold is
// kept as documented.
func IsSparseRepo(commits []domain.Commit, a domain.CommitAnalysis) bool {
	return len(commits) <= 5 || a.CommitFrequency < 5
}

// ActivityLevel describes commit volume.
func ActivityLevel(n int) string {
	switch {
	case n < 10:
		return "Light"
	case n < 30:
		return "Moderate"
	default:
		return "Heavy"
	}
}

// distinctAuthors returns author names in first-seen order.
func distinctAuthors(commits []domain.Commit) []string {
	seen := make(map[string]struct{}, len(commits))
	var out []string
	for _, c := range commits {
		if _, ok := seen[c.AuthorName]; ok {
			continue
		}
		seen[c.AuthorName] = struct{}{}
		out = append(out, c.AuthorName)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
