package changelog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/deltahq/delta/internal/domain"
)

const (
	maxTitleLength   = 200
	maxVersionLength = 50
	maxContentLength = 200_000
)

// GenerateInput holds the parameters for generating a changelog.
type GenerateInput struct {
	RepositoryID uuid.UUID
	// Limit is the number of most recent commits to describe; 0 uses the default.
	Limit   int
	Publish bool
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError
	if i.RepositoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "repository_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxCommitLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the editable fields of a changelog. Nil fields are kept.
type UpdateInput struct {
	Title   *string
	Version *string
	Content *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Version == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field required"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Version != nil && len(strings.TrimSpace(*i.Version)) > maxVersionLength {
		errs = append(errs, domain.FieldError{Field: "version", Message: "max 50 characters"})
	}
	if i.Content != nil {
		if strings.TrimSpace(*i.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		}
		if len(*i.Content) > maxContentLength {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.ChangelogPatch {
	return domain.ChangelogPatch{
		Title:   trimOrNil(i.Title),
		Version: trimPtr(i.Version),
		Content: i.Content,
	}
}

// PreviewInput describes a commit range composed without persistence.
type PreviewInput struct {
	Owner string
	Repo  string
	Token string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i PreviewInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Owner) == "" {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "required"})
	}
	if strings.TrimSpace(i.Repo) == "" {
		errs = append(errs, domain.FieldError{Field: "repo", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxCommitLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be within [0, 100]"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
