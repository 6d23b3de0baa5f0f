package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrSourceExtensionsEmpty   = errors.New("source_extensions cannot be empty")
	ErrInvalidSourceExtension  = errors.New("source extension must start with '.'")
	ErrInvalidMinSegmentLength = errors.New("min_segment_length must be at least 1")
)
