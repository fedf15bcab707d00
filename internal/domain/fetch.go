package domain

import "fmt"

// FetchErrorKind classifies failures reported by the source-control host.
type FetchErrorKind string

const (
	FetchNotFound    FetchErrorKind = "NOT_FOUND"
	FetchForbidden   FetchErrorKind = "FORBIDDEN"
	FetchConflict    FetchErrorKind = "CONFLICT"
	FetchUnavailable FetchErrorKind = "UNAVAILABLE"
)

func (k FetchErrorKind) String() string { return string(k) }

func (k FetchErrorKind) IsValid() bool {
	switch k {
	case FetchNotFound, FetchForbidden, FetchConflict, FetchUnavailable:
		return true
	}
	return false
}

// sentinel returns the cross-layer sentinel matching the kind.
func (k FetchErrorKind) sentinel() error {
	switch k {
	case FetchNotFound:
		return ErrNotFound
	case FetchForbidden:
		return ErrForbidden
	case FetchConflict:
		return ErrConflict
	default:
		return ErrUnavailable
	}
}

// FetchError is the only error type the source-control adapter returns.
// Callers switch on Kind (or use errors.Is with the domain sentinels).
type FetchError struct {
	Kind FetchErrorKind
	Op   string
	Err  error
}

// NewFetchError builds a FetchError for the given operation.
func NewFetchError(kind FetchErrorKind, op string, err error) *FetchError {
	return &FetchError{Kind: kind, Op: op, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}
