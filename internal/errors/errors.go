package errors

import (
	e "errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

// FormatError is returned if a lines file starts with a header that is not
// supported.
type FormatError struct {
	// Header is the (trimmed) header text as found in the file.
	Header string
	// Unsupported is set for headers that are known, but too old.
	Unsupported bool
}

func (f *FormatError) Error() string {
	if f.Unsupported {
		return fmt.Sprintf("unsupported lines format: %q", f.Header)
	}
	return fmt.Sprintf("unrecognized lines header: %q", f.Header)
}

// NewFormatError creates an error for an unrecognized header.
func NewFormatError(header string) error {
	return &FormatError{Header: header}
}

// NewUnsupportedError creates an error for a header that is recognized
// but rejected.
func NewUnsupportedError(header string) error {
	return &FormatError{Header: header, Unsupported: true}
}

// IsFormatError checks if the given error is caused by an invalid header.
func IsFormatError(err error) bool {
	var f *FormatError
	return e.As(err, &f)
}

// ValueError is returned for integer codes without a known meaning.
type ValueError struct {
	Field string
	Value int32
}

func (v *ValueError) Error() string {
	return fmt.Sprintf("invalid %v: %d", v.Field, v.Value)
}

// NewValueError creates an error for the given field and offending value.
func NewValueError(field string, value int32) error {
	return &ValueError{Field: field, Value: value}
}

// IsValueError checks if the given error is caused by an unknown code.
func IsValueError(err error) bool {
	var v *ValueError
	return e.As(err, &v)
}

// IOError wraps an error from the underlying reader or writer.
type IOError struct {
	Op  string
	Err error
}

func (i *IOError) Error() string {
	return fmt.Sprintf("%v: %v", i.Op, i.Err)
}

func (i *IOError) Unwrap() error {
	return i.Err
}

// NewIOError wraps err. The operation should name what was read or written.
func NewIOError(err error, op string, v ...interface{}) error {
	return &IOError{Op: fmt.Sprintf(op, v...), Err: err}
}

// IsIOError checks if the given error was caused by a failed read or write.
func IsIOError(err error) bool {
	var i *IOError
	return e.As(err, &i)
}

// VersionError is returned if the version of a multi-page document cannot be
// determined, e.g. because pages have different versions.
type VersionError struct {
	message string
}

func (v *VersionError) Error() string {
	return v.message
}

// NewVersionError creates a version error from the given format string.
func NewVersionError(msg string, v ...interface{}) error {
	return &VersionError{fmt.Sprintf(msg, v...)}
}

// IsVersionError checks if the given error is a version mismatch.
func IsVersionError(err error) bool {
	var v *VersionError
	return e.As(err, &v)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var n notFound
	return e.As(err, &n)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	var v validationError
	return e.As(err, &v)
}
