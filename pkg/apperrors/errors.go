package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers. Handlers translate these to
// HTTP statuses; nothing below the handler layer knows about HTTP.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for every authentication
	// failure. It is deliberately generic so callers cannot tell
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden means the identity is valid but its role does not
	// permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrStoreWrite means an atomic save failed; the previous file
	// contents remain authoritative.
	ErrStoreWrite = errors.New("store write failed")

	// ErrCorrupted means a collection file exists but could not be
	// decoded. This is surfaced rather than masked as "no data" so
	// operators can detect corruption. A missing file is not
	// corruption and loads as an empty collection.
	ErrCorrupted = errors.New("store corrupted")
)

// ValidationError carries a complete field-to-message map. Validation
// collects every failing field before returning, never just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
