package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound: a well-formed identifier that resolves to nothing.
	ErrNotFound = errors.New("referenced entity not found")
	// ErrInvalidReference: an identifier that is not a valid object id.
	ErrInvalidReference = errors.New("invalid id format")
	// ErrPersistence: the store is unreachable or rejected a write.
	ErrPersistence = errors.New("persistence failure")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a request, not just the
// first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
