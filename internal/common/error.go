// Package common contains the error taxonomy shared by the PostFeed client
// layers. Callers should use errors.Is / errors.As to classify failures:
//
//   - ErrValidation: field-level input problems (*ValidationError)
//   - ErrAuth:       credential mismatch or duplicate account (*AuthError)
//   - ErrStorage:    local persistence failures (*StorageError)
//   - ErrNetwork:    remote endpoint failures (*NetworkError)
package common

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("auth error")
	ErrStorage    = errors.New("storage error")
	ErrNetwork    = errors.New("network error")
)

// Field identifies the form field a ValidationError refers to.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
)

// Validation reasons.
const (
	ReasonEmailRequired           = "email required"
	ReasonInvalidFormat           = "invalid format"
	ReasonPasswordRequired        = "password required"
	ReasonPasswordTooShort        = "password too short"
	ReasonConfirmPasswordRequired = "confirm password required"
	ReasonPasswordsDoNotMatch     = "passwords do not match"
)

// ValidationError reports a rejected form field. It is always recoverable.
type ValidationError struct {
	Field  Field
	Reason string
}

func NewValidationError(field Field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AuthError reports a credential mismatch or a duplicate account.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords.
	ErrInvalidCredentials = &AuthError{Reason: "invalid credentials"}
	ErrEmailInUse         = &AuthError{Reason: "email in use"}
)

// StorageError wraps a failure of the local persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NetworkError wraps a failure talking to the remote content endpoint.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
