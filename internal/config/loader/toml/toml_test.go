package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cheddar-build/cheddar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectFile = `
system_packages = ["openssl-devel"]
steps = ["make", "make test"]

[environment]
CC = "gcc"
`

func writeProjectFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("parses project file over defaults", func(t *testing.T) {
		dir := writeProjectFile(t, FileName, testProjectFile)

		cfg, err := Load(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"CC": "gcc"}, cfg.StringMap(config.KeyEnvironment))
		assert.Equal(t, []string{"openssl-devel"}, cfg.Strings(config.KeySystemPackages))
		assert.Equal(t, []string{"make", "make test"}, cfg.Strings(config.KeySteps))
		// untouched template keys survive the overlay
		assert.Contains(t, cfg, config.KeyToolchains)
	})

	t.Run("missing project file", func(t *testing.T) {
		_, err := Load(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoProjectFile)
		assert.Contains(t, err.Error(), FileName)
	})

	t.Run("malformed TOML", func(t *testing.T) {
		dir := writeProjectFile(t, FileName, "steps = [unclosed")

		_, err := Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParseToml)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		dir := writeProjectFile(t, FileName, "")

		cfg, err := Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestLoaderFunc(t *testing.T) {
	t.Run("defaults to standard file name", func(t *testing.T) {
		dir := writeProjectFile(t, FileName, testProjectFile)

		cfg, err := LoaderFunc(context.Background(), dir, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"make", "make test"}, cfg.Strings(config.KeySteps))
	})

	t.Run("first positional argument overrides file name", func(t *testing.T) {
		dir := writeProjectFile(t, "release.toml", testProjectFile)

		cfg, err := LoaderFunc(context.Background(), dir, []string{"release.toml"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"openssl-devel"}, cfg.Strings(config.KeySystemPackages))
	})

	t.Run("keyword arguments overlay top-level values", func(t *testing.T) {
		dir := writeProjectFile(t, FileName, testProjectFile)

		cfg, err := LoaderFunc(context.Background(), dir, nil, map[string]string{
			"profile": "release",
		})
		require.NoError(t, err)
		assert.Equal(t, "release", cfg["profile"])
	})
}
