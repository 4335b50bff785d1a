// Package errors defines the domain error taxonomy shared by every service.
//
// Services return *Error values carrying a Code; transport layers map codes to
// status codes without inspecting messages. Stores never return these directly,
// they return pkg/platform/sentinel errors that services translate.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeForbidden          Code = "forbidden"
	CodeUnauthorized       Code = "unauthorized"
	CodeInvalidState       Code = "invalid_state"
	CodeConflict           Code = "conflict"
	CodeDuplicateRequest   Code = "duplicate_request"
	CodeAlreadyActive      Code = "already_active"
	CodeAlreadyAwarded     Code = "already_awarded"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeInvalidScore       Code = "invalid_score"
	CodeSelfRating         Code = "self_rating"
	CodeSelfAward          Code = "self_award"
	CodeNotParticipating   Code = "not_participating"
	CodeInvalidRole        Code = "invalid_role"
	CodeInvalidRoleChange  Code = "invalid_role_change"
	CodeNotEligible        Code = "not_eligible"
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_error"
	CodeBadRequest         Code = "bad_request"
	CodeTimeout            Code = "timeout"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal_error"
)

// Error is a coded domain error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
// Returns nil when err is nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any domain error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias of HasCode kept for call sites that read better as a predicate.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// IsDomain reports whether err carries any domain code.
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// CodeOf returns the outermost domain code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
