package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Commit is a single commit as returned by the source-control host.
type Commit struct {
	SHA         string
	Message     string
	AuthorName  string
	AuthorEmail string
	CommittedAt time.Time
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

// StoredCommit is a commit kept as a historical record for a repository.
// Records are unique per (repository, SHA).
type StoredCommit struct {
	Commit
	RepoID    uuid.UUID
	Processed bool
	CreatedAt time.Time
}

// Category is the changelog section a commit is filed under.
type Category string

const (
	CategoryFeatures      Category = "features"
	CategoryFixes         Category = "fixes"
	CategoryImprovements  Category = "improvements"
	CategoryDocumentation Category = "documentation"
	CategoryTesting       Category = "testing"
	CategoryDependencies  Category = "dependencies"
	CategoryConfiguration Category = "configuration"
	CategoryRefactoring   Category = "refactoring"
	CategoryOther         Category = "other"
)

// Categories lists every category in classification priority order.
var Categories = []Category{
	CategoryFeatures,
	CategoryFixes,
	CategoryImprovements,
	CategoryDocumentation,
	CategoryTesting,
	CategoryDependencies,
	CategoryConfiguration,
	CategoryRefactoring,
	CategoryOther,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFeatures, CategoryFixes, CategoryImprovements, CategoryDocumentation,
		CategoryTesting, CategoryDependencies, CategoryConfiguration, CategoryRefactoring,
		CategoryOther:
		return true
	}
	return false
}

// MonthGroup is a calendar-month bucket of commits.
type MonthGroup struct {
	Key     string // "2006-01"
	Label   string // "January 2006"
	Commits []Commit
}

// TimeSpread is the earliest and latest commit timestamps of a commit set.
type TimeSpread struct {
	Earliest time.Time
	Latest   time.Time
}

// CommitAnalysis is a projection of a commit sequence used to compose changelogs.
type CommitAnalysis struct {
	Patterns        map[Category][]string
	Authors         map[string]struct{}
	TimeSpread      TimeSpread
	CommitFrequency int
}

// CategorizedCount returns the number of messages filed under any category.
func (a CommitAnalysis) CategorizedCount() int {
	n := 0
	for _, msgs := range a.Patterns {
		n += len(msgs)
	}
	return n
}

// NonEmptyCategories returns the categories with at least one message, in priority order.
func (a CommitAnalysis) NonEmptyCategories() []Category {
	var out []Category
	for _, c := range Categories {
		if len(a.Patterns[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}
