package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// Booking/route preconditions surfaced to clients with stable messages.
var (
	ErrRouteNotFound     = NotFoundError{Resource: "route"}
	ErrBookingNotFound   = NotFoundError{Resource: "booking"}
	ErrUserNotFound      = NotFoundError{Resource: "user"}
	ErrInsufficientSeats = ConflictError{Resource: "route", Msg: "insufficient seats"}
	ErrSeatTaken         = ConflictError{Resource: "seat", Msg: "seat already taken"}
	ErrEmailTaken        = ConflictError{Resource: "user", Msg: "email already registered"}
)

// ErrInvalidCredentials deliberately carries no detail about whether the
// email exists.
var ErrInvalidCredentials = errors.New("invalid email or password")
