package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ConflictError reports a unique constraint violation.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

// NotFoundError reports that the referenced row does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// AuthError reports a credential mismatch.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string {
	return e.Msg
}

func NewAuthError(msg string) error {
	return &AuthError{Msg: msg}
}

func IsAuthError(err error) bool {
	var authError *AuthError
	return errors.As(err, &authError)
}

// PersistenceError wraps any other database failure. Msg is safe to show to
// clients, Err carries the driver error.
type PersistenceError struct {
	Msg string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(msg string, err error) error {
	return &PersistenceError{Msg: msg, Err: err}
}

func IsPersistenceError(err error) bool {
	var persistenceError *PersistenceError
	return errors.As(err, &persistenceError)
}
