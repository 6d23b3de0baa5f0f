package msbuild

import "errors"

// Error definitions for msbuild package.
var (
	// ErrInvalidXML is returned when a document cannot be parsed.
	ErrInvalidXML = errors.New("invalid XML document")

	// ErrNoRootElement is returned when a document has no root element.
	ErrNoRootElement = errors.New("document has no root element")
)
