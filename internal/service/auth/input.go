package auth

import (
	"github.com/deltahq/delta/internal/domain"
)

// LoginInput holds the parameters GitHub sends to the OAuth callback.
type LoginInput struct {
	Code  string
	State string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 512 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if i.State == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	} else if len(i.State) > 256 {
		errs = append(errs, domain.FieldError{Field: "state", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
