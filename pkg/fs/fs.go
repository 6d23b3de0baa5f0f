// Package fs provides file system operations and error definitions.
package fs

type realFS struct{}

// NewFS creates a new FS instance backed by the operating system.
func NewFS() FS {
	return &realFS{}
}
