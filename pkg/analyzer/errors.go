package analyzer

import "errors"

// Error definitions for analyzer package.
var (
	// ErrSourceRead is returned when a source file of a project cannot be read.
	ErrSourceRead = errors.New("failed to read source file")
)
