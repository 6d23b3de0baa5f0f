// CI functions for dotnet-prune.
//
// Lint and test the module, and cross-compile the CLI for every supported
// platform.

package main

import (
	"runtime"

	"dotnet-prune/dagger/internal/dagger"
)

const containerPath = "/go/src/github.com/lerenn/dotnet-prune"

type DotnetPrune struct{}

// Lint runs golangci-lint on the main repo (./...) only.
func (ci *DotnetPrune) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *DotnetPrune) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=unit ./...",
		})
}

// IntegrationTests returns a container that runs the integration tests.
// They write project files under the test's temporary directories.
func (ci *DotnetPrune) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c",
			"go test -tags=integration ./...",
		})
}

// Build cross-compiles the CLI and returns a directory holding one binary per platform.
func (ci *DotnetPrune) Build(sourceDir *dagger.Directory) *dagger.Directory {
	base := ci.withGoCodeAndCacheAsWorkDirectory(
		dag.Container().From("golang:"+goVersion()+"-alpine"), sourceDir).
		WithEnvVariable("CGO_ENABLED", "0")

	out := dag.Directory()
	for _, key := range AvailablePlatforms() {
		platform := Platforms[key]
		binary := base.
			WithEnvVariable("GOOS", platform.OS).
			WithEnvVariable("GOARCH", platform.Arch).
			WithExec([]string{"go", "build", "-o", "/out/" + platform.BinaryName(), "./cmd/dotnet-prune"}).
			File("/out/" + platform.BinaryName())
		out = out.WithFile(platform.BinaryName(), binary)
	}
	return out
}

func (ci *DotnetPrune) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
