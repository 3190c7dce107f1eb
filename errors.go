package rmlines

import (
	"github.com/akeil/rmlines/internal/errors"
)

// IsFormatError checks if the given error is caused by an unknown or
// unsupported file header.
func IsFormatError(err error) bool {
	return errors.IsFormatError(err)
}

// IsValueError checks if the given error is caused by an invalid brush type
// or color code.
func IsValueError(err error) bool {
	return errors.IsValueError(err)
}

// IsIOError checks if the given error is caused by a failed read or write.
func IsIOError(err error) bool {
	return errors.IsIOError(err)
}

// IsVersionError checks if the given error is caused by a notebook with
// mixed versions or without pages.
func IsVersionError(err error) bool {
	return errors.IsVersionError(err)
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	return errors.IsValidationError(err)
}
