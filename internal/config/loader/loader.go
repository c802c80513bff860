// Package loader resolves and invokes configuration loaders. A loader turns
// a project directory, plus whatever extra arguments the caller supplied,
// into a Configuration. Custom loaders are named by a symbolic reference in
// "container.name" form and resolved through a Registry populated at process
// start; resolving a reference never invokes the loader, so resolution
// failures stay distinguishable from invocation failures.
package loader

import (
	"context"

	"github.com/cheddar-build/cheddar/internal/config"
)

// Loader produces a Configuration for a project directory. The positional
// arguments and keyword arguments come from the command line and are
// forwarded verbatim; built-in loaders are free to ignore them.
type Loader func(ctx context.Context, dir string, args []string, kwargs map[string]string) (config.Configuration, error)
