package loader

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Registry maps symbolic references to loaders. References use
// "container.name" form; the final dot-separated segment is the loader name
// and everything before it is the container. Registration happens once at
// startup, lookups afterwards are read-only.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]map[string]Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{
		containers: make(map[string]map[string]Loader),
	}
}

// Register adds a loader under the given symbolic reference. It panics on a
// malformed reference or a duplicate registration; both are wiring mistakes,
// not runtime conditions.
func (r *Registry) Register(ref string, fn Loader) {
	container, name, err := splitRef(ref)
	if err != nil {
		panic(fmt.Sprintf("invalid loader reference %q: %v", ref, err))
	}
	if fn == nil {
		panic(fmt.Sprintf("nil loader registered for %q", ref))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, ok := r.containers[container]
	if !ok {
		names = make(map[string]Loader)
		r.containers[container] = names
	}
	if _, exists := names[name]; exists {
		panic(fmt.Sprintf("loader with reference %q already registered", ref))
	}
	slog.Debug("Registering loader", "reference", ref)
	names[name] = fn
}

// Resolve returns the loader registered under the symbolic reference. The
// loader is not invoked. Any failure (malformed reference, unknown
// container, unknown name) is reported as ErrLoaderNotFound wrapping the
// underlying detail.
func (r *Registry) Resolve(ref string) (Loader, error) {
	container, name, err := splitRef(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to resolve %q: %v", ErrLoaderNotFound, ref, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names, ok := r.containers[container]
	if !ok {
		return nil, fmt.Errorf(
			"%w: unable to resolve %q: no loader container %q",
			ErrLoaderNotFound, ref, container,
		)
	}
	fn, ok := names[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: unable to resolve %q: container %q has no loader %q",
			ErrLoaderNotFound, ref, container, name,
		)
	}
	return fn, nil
}

// References returns all registered symbolic references, unordered.
func (r *Registry) References() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var refs []string
	for container, names := range r.containers {
		for name := range names {
			refs = append(refs, container+"."+name)
		}
	}
	return refs
}

// splitRef splits a symbolic reference into its container path and final
// name segment.
func splitRef(ref string) (container, name string, err error) {
	idx := strings.LastIndex(ref, ".")
	if idx < 0 {
		return "", "", fmt.Errorf("reference must be in container.name form")
	}
	container, name = ref[:idx], ref[idx+1:]
	if container == "" || name == "" {
		return "", "", fmt.Errorf("reference must be in container.name form")
	}
	return container, name, nil
}
