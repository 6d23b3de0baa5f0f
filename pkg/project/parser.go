// Package project locates .NET project files and parses their declared references.
package project

import (
	"strings"

	"github.com/lerenn/dotnet-prune/pkg/fs"
	"github.com/lerenn/dotnet-prune/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=parser.go -destination=mocks/parser.gen.go -package=mocks

// File extensions recognised by the parser.
const (
	ProjectExtension     = ".csproj"
	SolutionExtension    = ".sln"
	XMLSolutionExtension = ".slnx"
)

// Parser interface provides project discovery and parsing.
type Parser interface {
	// ParseProjectFile reads the package and project references declared by a project file.
	ParseProjectFile(path string) (ProjectInfo, error)

	// GetAllProjectFiles lists the absolute project paths reachable from a solution or project file.
	GetAllProjectFiles(path string) ([]string, error)

	// ResolveTarget turns a file or directory argument into the solution or project file to analyze.
	ResolveTarget(path string) (string, error)
}

// NewParserParams contains parameters for creating a new Parser instance.
type NewParserParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realParser struct {
	fs     fs.FS
	logger logger.Logger
}

// NewParser creates a new Parser instance.
func NewParser(params NewParserParams) Parser {
	fsys := params.FS
	if fsys == nil {
		fsys = fs.NewFS()
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realParser{
		fs:     fsys,
		logger: log,
	}
}

func hasExtension(path, ext string) bool {
	return len(path) >= len(ext) && strings.EqualFold(path[len(path)-len(ext):], ext)
}
