package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - match with errors.Is()
var (
	// ErrNotFound indicates a referenced id does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates invalid input
	ErrValidation = errors.New("validation failed")

	// ErrNotEmpty indicates a folder deletion was blocked by existing
	// children or documents
	ErrNotEmpty = errors.New("folder not empty")

	// ErrStorage indicates an adapter-level failure (constraint violation,
	// connectivity loss). The operation's unit of work was rolled back.
	ErrStorage = errors.New("storage failure")
)

// NotEmptyError reports why a folder could not be deleted.
type NotEmptyError struct {
	FolderID  string
	Children  int
	Documents int
}

// Error implements the error interface
func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("folder %s is not empty (%d child folders, %d documents)",
		e.FolderID, e.Children, e.Documents)
}

// Is allows errors.Is() to match against ErrNotEmpty
func (e *NotEmptyError) Is(target error) bool {
	return target == ErrNotEmpty
}
