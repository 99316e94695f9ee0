package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	// Configuration errors.
	ErrInvalidConfig = errors.New("storage: invalid configuration")

	// Authorization errors.
	ErrUnauthorized = errors.New("storage: missing required role")

	// Input validation errors.
	ErrInvalidPath     = errors.New("storage: invalid path")
	ErrInvalidFileName = errors.New("storage: invalid file name")

	// Filesystem operation errors.
	ErrStorageSetup = errors.New("storage: failed to prepare storage")
	ErrListEntries  = errors.New("storage: failed to list entries")
	ErrCreateFolder = errors.New("storage: failed to create folder")
	ErrSaveFile     = errors.New("storage: failed to save file")
)

// ValidationError reports a user-correctable form input failure, such as an
// empty or malformed folder name.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "storage: validation failed: " + e.Reason
}

// wrapIOError attaches a filesystem cause to a sentinel error.
// Note: Uses %v (not %w) for the cause to normalize error types -
// callers should use errors.Is() with sentinel errors, not errors.As()
// for OS error types.
func wrapIOError(sentinel, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}
