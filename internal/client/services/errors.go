package services

import "errors"

// ErrValidation marks input rejected before any request was sent.
var ErrValidation = errors.New("validation failed")

func invalid(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }
