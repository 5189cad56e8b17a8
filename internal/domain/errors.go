package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConfigMissing     = errors.New("configuration missing")
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrOutputUnavailable = errors.New("output unavailable")
	ErrUnsupportedFile   = errors.New("unsupported file type")
	ErrEmptyQueue        = errors.New("print queue is empty")
)

// ValidationError reports a single invalid field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
