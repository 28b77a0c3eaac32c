package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a requested value is absent.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrMissingProperty means that a required configuration property is absent or blank.
	ErrMissingProperty = "missing_property"
	// ErrInvalidProperty means that a configuration property is present but cannot be used.
	ErrInvalidProperty = "invalid_property"
	// ErrRegistryUnavailable means that the registry could not be reached (transport error, deadline).
	ErrRegistryUnavailable = "registry_unavailable"
	// ErrRegistryBadResponse means that the registry answered with an unexpected status or body.
	ErrRegistryBadResponse = "registry_bad_response"
	// ErrHostnameUnresolved means that the local canonical hostname could not be determined.
	ErrHostnameUnresolved = "hostname_unresolved"
)

// MyError represents an error within the context of myregistrar.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// newOrInner keeps an already classified inner error instead of re-wrapping it under a new code.
func newOrInner(code string, message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return newOrInner(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return newOrInner(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return newOrInner(ErrBadParameter, message, inner)
}

// NewMissingPropertyError names the absent property in its message.
func NewMissingPropertyError(property string) *MyError {
	return NewMyError(ErrMissingProperty, fmt.Sprintf("property %s is required", property), nil)
}

func NewInvalidPropertyError(property string, inner error) *MyError {
	return NewMyError(ErrInvalidProperty, fmt.Sprintf("property %s is invalid", property), inner)
}

func NewRegistryUnavailableError(message string, inner error) *MyError {
	return newOrInner(ErrRegistryUnavailable, message, inner)
}

func NewRegistryBadResponseError(message string, inner error) *MyError {
	return newOrInner(ErrRegistryBadResponse, message, inner)
}

func NewHostnameUnresolvedError(message string, inner error) *MyError {
	return newOrInner(ErrHostnameUnresolved, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a myregistrar error, or nil if it is not a myregistrar error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsMissingPropertyError(err error) bool {
	return IsMyError(err, ErrMissingProperty)
}

func IsInvalidPropertyError(err error) bool {
	return IsMyError(err, ErrInvalidProperty)
}

func IsRegistryUnavailableError(err error) bool {
	return IsMyError(err, ErrRegistryUnavailable)
}

func IsRegistryBadResponseError(err error) bool {
	return IsMyError(err, ErrRegistryBadResponse)
}

func IsHostnameUnresolvedError(err error) bool {
	return IsMyError(err, ErrHostnameUnresolved)
}
