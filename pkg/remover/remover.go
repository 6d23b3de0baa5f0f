// Package remover rewrites project files to drop declarations confirmed unused.
package remover

import (
	"github.com/lerenn/dotnet-prune/pkg/fs"
	"github.com/lerenn/dotnet-prune/pkg/logger"
	"github.com/lerenn/dotnet-prune/pkg/project"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=remover.go -destination=mocks/remover.gen.go -package=mocks

// Kind names the type of declaration being removed.
type Kind string

// Declaration kinds handled by the remover.
const (
	KindPackage          Kind = "package"
	KindProjectReference Kind = "project reference"
)

// Remover interface provides removal of unused declarations from project files.
type Remover interface {
	// RemoveUnusedPackages removes the packages from their owning project files.
	// It returns true only when every project file was rewritten.
	RemoveUnusedPackages(packages []project.PackageReference) bool

	// RemoveUnusedProjectReferences removes the references from their owning project files.
	// It returns true only when every project file was rewritten.
	RemoveUnusedProjectReferences(references []project.ProjectReference) bool
}

// Notifier receives the outcome of each rewritten project file.
type Notifier interface {
	// Removed is called once a project file has been saved.
	Removed(kind Kind, count int, projectPath string)

	// RemovalFailed is called when a project file could not be loaded or saved.
	RemovalFailed(kind Kind, projectPath string, err error)
}

// NewRemoverParams contains parameters for creating a new Remover instance.
type NewRemoverParams struct {
	FS       fs.FS
	Logger   logger.Logger
	Notifier Notifier
}

type realRemover struct {
	fs       fs.FS
	logger   logger.Logger
	notifier Notifier
}

// NewRemover creates a new Remover instance.
func NewRemover(params NewRemoverParams) Remover {
	r := &realRemover{
		fs:       params.FS,
		logger:   params.Logger,
		notifier: params.Notifier,
	}
	if r.fs == nil {
		r.fs = fs.NewFS()
	}
	if r.logger == nil {
		r.logger = logger.NewNoopLogger()
	}
	if r.notifier == nil {
		r.notifier = noopNotifier{}
	}
	return r
}

type noopNotifier struct{}

func (noopNotifier) Removed(Kind, int, string)         {}
func (noopNotifier) RemovalFailed(Kind, string, error) {}
