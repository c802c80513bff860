// Package script provides custom loaders backed by go-polyscript. A script
// loader takes the script path as its first positional argument, compiles it
// with the chosen engine, and evaluates it with the project directory, the
// remaining positional arguments, and the keyword arguments exposed as
// script data. The script's resulting map becomes the Configuration.
//
// Go cannot import an arbitrary function at runtime, so scripts are the
// extensibility mechanism behind symbolic references like "script.risor".
package script

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cheddar-build/cheddar/internal/config"
	"github.com/cheddar-build/cheddar/internal/config/loader"
	"github.com/robbyt/go-polyscript/engines/risor"
	"github.com/robbyt/go-polyscript/engines/starlark"
	"github.com/robbyt/go-polyscript/platform"
	"github.com/robbyt/go-polyscript/platform/constants"
	"github.com/robbyt/go-polyscript/platform/data"
	psloader "github.com/robbyt/go-polyscript/platform/script/loader"
)

type engine string

const (
	engineRisor    engine = "risor"
	engineStarlark engine = "starlark"
)

// Risor returns a loader that evaluates a Risor script.
func Risor() loader.Loader {
	return func(ctx context.Context, dir string, args []string, kwargs map[string]string) (config.Configuration, error) {
		return evalScript(ctx, engineRisor, dir, args, kwargs)
	}
}

// Starlark returns a loader that evaluates a Starlark script.
func Starlark() loader.Loader {
	return func(ctx context.Context, dir string, args []string, kwargs map[string]string) (config.Configuration, error) {
		return evalScript(ctx, engineStarlark, dir, args, kwargs)
	}
}

func evalScript(ctx context.Context, eng engine, dir string, args []string, kwargs map[string]string) (config.Configuration, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: first loader argument must be the script path", ErrNoScriptPath)
	}

	evaluator, err := compile(eng, args[0])
	if err != nil {
		return nil, err
	}

	enrichedCtx, err := addScriptData(ctx, dir, args[1:], kwargs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptData, err)
	}

	result, err := evaluator.Eval(enrichedCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}

	value := result.Interface()
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: script returned %T, want a map", ErrBadResult, value)
	}
	return config.Configuration(table), nil
}

// compile builds the engine evaluator for a script on disk.
func compile(eng engine, path string) (platform.Evaluator, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve path %q: %w", ErrLoaderCreation, path, err)
	}

	scriptLoader, err := psloader.NewFromDisk(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoaderCreation, err)
	}

	handler := slog.Default().Handler()
	switch eng {
	case engineRisor:
		evaluator, err := risor.FromRisorLoader(handler, scriptLoader)
		if err != nil {
			return nil, fmt.Errorf("%w: risor compilation failed: %w", ErrCompilationFailed, err)
		}
		return evaluator, nil
	case engineStarlark:
		evaluator, err := starlark.FromStarlarkLoader(handler, scriptLoader)
		if err != nil {
			return nil, fmt.Errorf("%w: starlark compilation failed: %w", ErrCompilationFailed, err)
		}
		return evaluator, nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrLoaderCreation, eng)
	}
}

// addScriptData attaches the loader inputs to the context so the script can
// read them under the standard eval-data namespace.
func addScriptData(ctx context.Context, dir string, args []string, kwargs map[string]string) (context.Context, error) {
	kwargData := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		kwargData[k] = v
	}
	argData := make([]any, len(args))
	for i, a := range args {
		argData[i] = a
	}

	provider := data.NewContextProvider(constants.EvalData)
	return provider.AddDataToContext(ctx, map[string]any{
		"directory": dir,
		"args":      argData,
		"kwargs":    kwargData,
	})
}
