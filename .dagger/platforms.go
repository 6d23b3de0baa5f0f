package main

import (
	"maps"
	"slices"
)

// Platform is a GOOS/GOARCH pair a release binary is built for.
type Platform struct {
	OS   string
	Arch string
}

// BinaryName returns the file name of the binary built for the platform.
func (p Platform) BinaryName() string {
	name := "dotnet-prune-" + p.OS + "-" + p.Arch
	if p.OS == "windows" {
		name += ".exe"
	}
	return name
}

// Platforms lists the targets built by the Build function.
var Platforms = map[string]Platform{
	"darwin/amd64":  {OS: "darwin", Arch: "amd64"},
	"darwin/arm64":  {OS: "darwin", Arch: "arm64"},
	"linux/amd64":   {OS: "linux", Arch: "amd64"},
	"linux/arm64":   {OS: "linux", Arch: "arm64"},
	"windows/amd64": {OS: "windows", Arch: "amd64"},
	"windows/arm64": {OS: "windows", Arch: "arm64"},
}

// AvailablePlatforms returns the platform keys in a stable order.
func AvailablePlatforms() []string {
	return slices.Sorted(maps.Keys(Platforms))
}
