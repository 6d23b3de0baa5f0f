package config

import (
	"fmt"
	"strings"

	"github.com/lerenn/dotnet-prune/configs"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = ".dotnet-prune.yaml"

// Config represents the application configuration.
type Config struct {
	SourceExtensions []string `yaml:"source_extensions"`
	ExcludedDirs     []string `yaml:"excluded_dirs"`
	MinSegmentLength int      `yaml:"min_segment_length"`
	IgnoredPackages  []string `yaml:"ignored_packages"`
}

// Default returns the configuration embedded in the binary.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return cfg
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if len(c.SourceExtensions) == 0 {
		return ErrSourceExtensionsEmpty
	}
	for _, ext := range c.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidSourceExtension, ext)
		}
	}
	if c.MinSegmentLength < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMinSegmentLength, c.MinSegmentLength)
	}
	return nil
}

// IsSourceFile reports whether path has one of the configured source extensions.
func (c Config) IsSourceFile(path string) bool {
	for _, ext := range c.SourceExtensions {
		if len(path) >= len(ext) && strings.EqualFold(path[len(path)-len(ext):], ext) {
			return true
		}
	}
	return false
}

// IsIgnoredPackage reports whether the package must never be reported unused.
func (c Config) IsIgnoredPackage(name string) bool {
	for _, ignored := range c.IgnoredPackages {
		if strings.EqualFold(ignored, name) {
			return true
		}
	}
	return false
}
