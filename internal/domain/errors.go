package domain

import "fmt"

// ValidationError marks caller-supplied arguments that fail shape or range
// checks. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError names a referenced entity that does not exist in the backend.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e *NotFoundError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.Ref)
}

func NotFound(entity, ref string) error {
	return &NotFoundError{Entity: entity, Ref: ref}
}

// UnavailableError covers entities that exist but are currently not
// orderable, so callers can suggest alternatives instead of assuming a typo.
type UnavailableError struct {
	Entity string
	Name   string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s %s is not available", e.Entity, e.Name)
}

func Unavailable(entity, name string) error {
	return &UnavailableError{Entity: entity, Name: name}
}

// BackendError wraps failures of the underlying store or API. Reads may be
// retried by the backend client, writes must not be.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("pms backend: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func Backend(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
