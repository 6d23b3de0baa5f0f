//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{".cs"}, cfg.SourceExtensions)
	assert.Equal(t, []string{"obj", "bin"}, cfg.ExcludedDirs)
	assert.Equal(t, 3, cfg.MinSegmentLength)
	assert.Empty(t, cfg.IgnoredPackages)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:    "no source extensions",
			mutate:  func(c *Config) { c.SourceExtensions = nil },
			wantErr: ErrSourceExtensionsEmpty,
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.SourceExtensions = []string{"cs"} },
			wantErr: ErrInvalidSourceExtension,
		},
		{
			name:    "zero segment length",
			mutate:  func(c *Config) { c.MinSegmentLength = 0 },
			wantErr: ErrInvalidMinSegmentLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsSourceFile(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.IsSourceFile("/src/App/Program.cs"))
	assert.True(t, cfg.IsSourceFile("/src/App/LEGACY.CS"))
	assert.False(t, cfg.IsSourceFile("/src/App/App.csproj"))
	assert.False(t, cfg.IsSourceFile("/src/App/View.cshtml"))
}

func TestConfig_IsIgnoredPackage(t *testing.T) {
	cfg := Default()
	cfg.IgnoredPackages = []string{"coverlet.collector"}

	assert.True(t, cfg.IsIgnoredPackage("Coverlet.Collector"))
	assert.False(t, cfg.IsIgnoredPackage("xunit"))
}

func TestRealManager_GetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := "ignored_packages:\n  - Microsoft.NET.Test.Sdk\nmin_segment_length: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewManager(path).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Microsoft.NET.Test.Sdk"}, cfg.IgnoredPackages)
	assert.Equal(t, 4, cfg.MinSegmentLength)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, []string{".cs"}, cfg.SourceExtensions)
	assert.Equal(t, []string{"obj", "bin"}, cfg.ExcludedDirs)
}

func TestRealManager_GetConfigStrict_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewManager(path).GetConfigStrict()
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_GetConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("source_extensions: [\n"), 0644))

	_, err := NewManager(path).GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		manager := NewManager(filepath.Join(t.TempDir(), DefaultFileName))

		cfg, err := manager.GetConfigWithFallback()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := NewManager("").GetConfigWithFallback()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid file is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		require.NoError(t, os.WriteFile(path, []byte("min_segment_length: 0\n"), 0644))

		_, err := NewManager(path).GetConfigWithFallback()
		assert.ErrorIs(t, err, ErrInvalidMinSegmentLength)
	})
}
