// Package config defines the build-environment configuration assembled for a
// project directory. The configuration is an open string-keyed mapping: the
// assembly core never validates its shape, it only guarantees a value is
// produced or an explicit error is returned. The well-known keys below are
// what the built-in template and the default loader populate; custom loaders
// may add anything.
package config

// Well-known configuration keys.
const (
	// KeyEnvironment holds a string map of environment variables applied
	// before any provisioning step runs.
	KeyEnvironment = "environment"

	// KeySystemPackages holds the list of OS-level packages to install.
	KeySystemPackages = "system_packages"

	// KeyToolchains holds the list of toolchain versions to make available.
	KeyToolchains = "toolchains"

	// KeyPackages holds the list of language-level packages to install.
	KeyPackages = "packages"

	// KeySteps holds the shell commands executed in order after installs.
	KeySteps = "steps"

	// KeyInstallers holds a string map from package category to the install
	// command prefix used by the provision runner.
	KeyInstallers = "installers"
)

// Configuration is the assembled build-environment configuration handed to
// the provision runner.
type Configuration map[string]any

// Default returns a fresh copy of the built-in configuration template.
// Every call builds a new value, so callers can never alias a shared
// template across invocations.
func Default() Configuration {
	return Configuration{
		KeyEnvironment:    map[string]string{},
		KeySystemPackages: []string{},
		KeyToolchains:     []string{},
		KeyPackages:       []string{},
		KeySteps:          []string{},
		KeyInstallers:     map[string]string{},
	}
}

// Clone returns a deep copy of the configuration. Nested maps and slices of
// the shapes produced by the loaders are copied; other values are shared.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	out := make(Configuration, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// Strings returns the value under key as a string slice. TOML and script
// loaders produce []any, the built-in template produces []string; both are
// accepted. Missing keys and other shapes return nil.
func (c Configuration) Strings(key string) []string {
	switch val := c[key].(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// StringMap returns the value under key as a string map, accepting both the
// map[string]string of the template and the map[string]any of the loaders.
// Missing keys and other shapes return nil.
func (c Configuration) StringMap(key string) map[string]string {
	switch val := c[key].(type) {
	case map[string]string:
		return val
	case map[string]any:
		out := make(map[string]string, len(val))
		for k, item := range val {
			if s, ok := item.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return nil
	}
}
