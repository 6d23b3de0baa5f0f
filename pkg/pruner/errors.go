package pruner

import "errors"

var (
	// ErrOperationCancelled is returned when the user declines the removal.
	ErrOperationCancelled = errors.New("operation cancelled")

	// ErrPartialRemoval is returned when at least one project file could not be rewritten.
	ErrPartialRemoval = errors.New("some dependencies could not be removed")

	// ErrProjectParse is returned when a listed project file cannot be parsed.
	ErrProjectParse = errors.New("failed to parse project")
)
