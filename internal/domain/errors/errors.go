// Package errors carries the domain-level error types the generator's
// packages share.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is the class every validation failure matches through
// errors.Is, so callers can branch without inspecting field detail.
var ErrInvalid = errors.New("invalid")

// FieldError ties one problem to the configuration key that caused it.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every bad field found in one pass, so a
// config file is reported whole instead of one key at a time.
type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "invalid configuration"
	}
	parts := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		parts = append(parts, item.Error())
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{Field: field, Message: msg})
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// HasAny reports whether any problem was collected.
func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}
