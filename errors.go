package plume

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel error store implementations return when a
// letter or template does not exist for the requesting user. The engine
// translates it into a typed [NotFoundError].
var ErrNotFound = errors.New("plume: not found")

// ValidationError reports a missing or invalid required field, including an
// unsupported export format.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("plume: invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced letter or template is absent.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plume: %s %s not found", e.Kind, e.ID)
}

// ForbiddenError reports an ownership mismatch. It is defined for the
// collaborating access layer; the engine itself resolves ownership through
// the store lookup contract and reports misses as [NotFoundError].
type ForbiddenError struct {
	Resource string
	UserID   string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("plume: user %s may not access %s", e.UserID, e.Resource)
}

// RenderError wraps an underlying format-library failure, preserving the
// original cause. Export failures carrying a RenderError are retryable.
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("plume: render %s: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
