package errs

import (
	"errors"
	"fmt"
)

// Error kinds shared by every domain module. Services wrap these with
// context via %w; handlers map them to HTTP codes with errors.Is.
var (
	// ErrValidation marks a missing or malformed field in a request.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an operation against a non-existent record.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks an unreachable or failing storage backend.
	ErrStorage = errors.New("storage unavailable")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Storagef wraps ErrStorage with a formatted detail message.
func Storagef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrStorage}, args...)...)
}
