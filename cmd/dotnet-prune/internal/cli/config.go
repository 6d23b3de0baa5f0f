// Package cli provides the global flag state and construction helpers for the dotnet-prune CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/lerenn/dotnet-prune/pkg/config"
)

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Remove applies the removal instead of only reporting.
	Remove bool
	// SkipConfirmation removes without asking first.
	SkipConfirmation bool
)

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, config.DefaultFileName)
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(GetConfigPath())
}

// LoadConfig loads the configuration. An explicit --config file must exist;
// the working directory file is optional.
func LoadConfig(manager config.Manager) (config.Config, error) {
	if ConfigPath != "" {
		return manager.GetConfigStrict()
	}
	return manager.GetConfigWithFallback()
}
