// Package toml implements the default configuration loader. It reads a
// project's cheddar.toml and overlays the parsed document onto a fresh copy
// of the built-in configuration template.
package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cheddar-build/cheddar/internal/config"
	"github.com/cheddar-build/cheddar/internal/config/loader"
	gotoml "github.com/pelletier/go-toml/v2"
)

// FileName is the project metadata file the default loader looks for.
const FileName = "cheddar.toml"

// Load is the default loader: it reads <dir>/cheddar.toml and returns the
// parsed configuration over the built-in defaults. Its failures are its own;
// they are not normalized by the assembly core.
func Load(_ context.Context, dir string) (config.Configuration, error) {
	return loadFile(filepath.Join(dir, FileName))
}

// LoaderFunc adapts the default loader to the custom-loader signature, so it
// can also be invoked by symbolic reference as "builtin.toml". An optional
// first positional argument overrides the project file name relative to the
// directory; keyword arguments are overlaid onto the result as top-level
// string values.
func LoaderFunc(_ context.Context, dir string, args []string, kwargs map[string]string) (config.Configuration, error) {
	name := FileName
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := loadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	for k, v := range kwargs {
		cfg[k] = v
	}
	return cfg, nil
}

func loadFile(path string) (config.Configuration, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoProjectFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrFailedToLoad, path, err)
	}
	return FromBytes(data)
}

// FromBytes parses TOML source and overlays it onto the default template.
func FromBytes(data []byte) (config.Configuration, error) {
	var doc map[string]any
	if err := gotoml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	cfg := config.Default()
	for k, v := range doc {
		cfg[k] = v
	}
	return cfg, nil
}

// interface conformance check against the custom loader signature
var _ loader.Loader = LoaderFunc
