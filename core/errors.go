package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// TransportError means a backend call could not be completed: the request
// never made it out, timed out, or came back with a non-auth failure status.
type TransportError struct {
	Op     string
	Status int // 0 when the request never got a response
	Err    error
}

func NewTransportError(op string, status int, err error) error {
	return &TransportError{Op: op, Status: status, Err: err}
}

func (e TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend responded %d", e.Op, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func IsTransportError(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

// AuthError means the backend rejected the bearer credential (missing,
// expired or insufficient). The credential is never checked client-side.
type AuthError struct {
	Op     string
	Status int
}

func NewAuthError(op string, status int) error {
	return &AuthError{Op: op, Status: status}
}

func (e AuthError) Error() string {
	return fmt.Sprintf("%s: not authorized (%d)", e.Op, e.Status)
}

func IsAuthError(err error) bool {
	_, ok := errors.Cause(err).(*AuthError)
	return ok
}

// CapabilityError means an operation was attempted on an entity type whose
// backend does not support it (e.g. deleting an assignment).
type CapabilityError struct {
	Entity string
	Op     string
}

func NewCapabilityError(entity, op string) error {
	return &CapabilityError{Entity: entity, Op: op}
}

func (e CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s is not supported", e.Entity, e.Op)
}

func IsCapabilityError(err error) bool {
	_, ok := errors.Cause(err).(*CapabilityError)
	return ok
}
