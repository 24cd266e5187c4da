package errors

import (
	"github.com/pkg/errors"
)

var (
	// ErrInternal is the major internal error classification.
	ErrInternal = New("internal")
	// ErrNotImplemented is the classification for the operations that are not implemented.
	ErrNotImplemented = New("not implemented")
)

// New creates new error class with given 'message'.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps provided 'err' with the 'message'. The result matches 'err' class when used with Is function.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps provided 'err' with the formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is checks if any error in the 'err' chain matches the 'target' class.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in 'err' chain that matches 'target'.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Cause gets the root cause of provided 'err'.
func Cause(err error) error {
	return errors.Cause(err)
}
