package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, name, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(code), 0o644))
	return path
}

func TestRisorLoader(t *testing.T) {
	t.Run("script result map becomes the configuration", func(t *testing.T) {
		path := writeScript(t, "loader.risor", `
{
	"steps": ["make"],
	"directory": ctx["directory"],
	"profile": ctx["kwargs"]["profile"],
}
`)

		fn := Risor()
		cfg, err := fn(context.Background(), "/proj", []string{path},
			map[string]string{"profile": "release"})
		require.NoError(t, err)

		assert.Equal(t, []string{"make"}, cfg.Strings("steps"))
		assert.Equal(t, "/proj", cfg["directory"])
		assert.Equal(t, "release", cfg["profile"])
	})

	t.Run("missing script path argument", func(t *testing.T) {
		fn := Risor()
		_, err := fn(context.Background(), ".", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoScriptPath)
	})

	t.Run("nonexistent script file", func(t *testing.T) {
		fn := Risor()
		_, err := fn(context.Background(), ".",
			[]string{filepath.Join(t.TempDir(), "missing.risor")}, nil)
		require.Error(t, err)
	})

	t.Run("non-map result is rejected", func(t *testing.T) {
		path := writeScript(t, "scalar.risor", `"just a string"`)

		fn := Risor()
		_, err := fn(context.Background(), ".", []string{path}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadResult)
	})
}

func TestStarlarkLoader(t *testing.T) {
	t.Run("script result map becomes the configuration", func(t *testing.T) {
		path := writeScript(t, "loader.star", `_ = {"steps": ["make"]}`)

		fn := Starlark()
		cfg, err := fn(context.Background(), "/proj", []string{path}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"make"}, cfg.Strings("steps"))
	})

	t.Run("compilation failure is reported", func(t *testing.T) {
		path := writeScript(t, "broken.star", "def broken(:\n")

		fn := Starlark()
		_, err := fn(context.Background(), ".", []string{path}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCompilationFailed)
	})
}
