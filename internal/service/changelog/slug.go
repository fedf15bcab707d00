package changelog

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// maxSlugAttempts bounds the suffix search in UniqueSlug.
const maxSlugAttempts = 1000

// Slugify derives a URL-safe base slug from a title: lowercase, runs of
// anything outside [a-z0-9] collapsed to "-", no leading or trailing dash.
func Slugify(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "changelog"
	}
	return s
}

// UniqueSlug returns base, or base-1, base-2, ... for the first candidate
// that exists reports as free.
func UniqueSlug(ctx context.Context, base string, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
