package project

import "errors"

// Error definitions for project package.
var (
	// Project file errors.
	ErrProjectFileNotFound = errors.New("project file not found")

	// Solution file errors.
	ErrSolutionRead = errors.New("failed to read solution file")

	// Target resolution errors.
	ErrTargetNotFound     = errors.New("file not found")
	ErrNoProjectFileFound = errors.New("no solution or project file found in the specified directory")
)
