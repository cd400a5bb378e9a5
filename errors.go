package mallet

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

type missingFieldError struct {
	cause error
}

// MissingFieldError annotates an error as being caused by a mandatory
// flag that was not present in the arguments.  When you have a missing
// field error, you should display the program usage help text.
func MissingFieldError(err error) error {
	if err == nil {
		return nil
	}
	return missingFieldError{
		cause: commonerrors.UsageError(errors.WithStack(err)),
	}
}

func (u missingFieldError) Error() string { return u.cause.Error() }
func (u missingFieldError) Unwrap() error { return u.cause }
func (u missingFieldError) Cause() error  { return u.cause }
func (u missingFieldError) Is(err error) bool {
	_, ok := err.(missingFieldError)
	return ok
}

func IsMissingFieldError(err error) bool {
	var u missingFieldError
	return errors.Is(err, u)
}

type conversionError struct {
	cause error
}

// ConversionError annotates an error as being caused by a flag operand
// that does not parse as the field's type.
func ConversionError(err error) error {
	if err == nil {
		return nil
	}
	return conversionError{
		cause: commonerrors.UsageError(errors.WithStack(err)),
	}
}

func (u conversionError) Error() string { return u.cause.Error() }
func (u conversionError) Unwrap() error { return u.cause }
func (u conversionError) Cause() error  { return u.cause }
func (u conversionError) Is(err error) bool {
	_, ok := err.(conversionError)
	return ok
}

func IsConversionError(err error) bool {
	var u conversionError
	return errors.Is(err, u)
}

type invalidCharError struct {
	cause error
}

// InvalidCharError annotates an error as being caused by a Char field
// whose operand is not exactly one character long.
func InvalidCharError(err error) error {
	if err == nil {
		return nil
	}
	return invalidCharError{
		cause: commonerrors.UsageError(errors.WithStack(err)),
	}
}

func (u invalidCharError) Error() string { return u.cause.Error() }
func (u invalidCharError) Unwrap() error { return u.cause }
func (u invalidCharError) Cause() error  { return u.cause }
func (u invalidCharError) Is(err error) bool {
	_, ok := err.(invalidCharError)
	return ok
}

func IsInvalidCharError(err error) bool {
	var u invalidCharError
	return errors.Is(err, u)
}

type validationError struct {
	cause error
}

// ValidationError annotates an error as coming from the validator run
// over a decoded model (see WithValidate).
func ValidationError(err error) error {
	if err == nil {
		return nil
	}
	return validationError{
		cause: errors.WithStack(err),
	}
}

func (u validationError) Error() string { return u.cause.Error() }
func (u validationError) Unwrap() error { return u.cause }
func (u validationError) Cause() error  { return u.cause }
func (u validationError) Is(err error) bool {
	_, ok := err.(validationError)
	return ok
}

func IsValidationError(err error) bool {
	var u validationError
	return errors.Is(err, u)
}

type unsupportedShapeError struct {
	cause error
}

// UnsupportedShapeError annotates an error as being caused by a field
// whose type the traversal does not handle (maps, arrays, nested
// structs, fields declared after the rest field).  These are defects
// in the declared struct, not runtime conditions: they surface before
// any user input is considered and should not be retried.
func UnsupportedShapeError(err error) error {
	if err == nil {
		return nil
	}
	return unsupportedShapeError{
		cause: commonerrors.ProgrammerError(errors.WithStack(err)),
	}
}

func (u unsupportedShapeError) Error() string { return u.cause.Error() }
func (u unsupportedShapeError) Unwrap() error { return u.cause }
func (u unsupportedShapeError) Cause() error  { return u.cause }
func (u unsupportedShapeError) Is(err error) bool {
	_, ok := err.(unsupportedShapeError)
	return ok
}

func IsUnsupportedShapeError(err error) bool {
	var u unsupportedShapeError
	return errors.Is(err, u)
}
