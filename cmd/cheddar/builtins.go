package main

import (
	"github.com/cheddar-build/cheddar/internal/config/loader"
	"github.com/cheddar-build/cheddar/internal/config/loader/script"
	tomlloader "github.com/cheddar-build/cheddar/internal/config/loader/toml"
)

// defaultRegistry builds the loader registry every invocation resolves
// against. Registration happens here, once, at startup; symbolic references
// are "container.name" strings.
func defaultRegistry() *loader.Registry {
	r := loader.NewRegistry()
	r.Register("builtin.toml", tomlloader.LoaderFunc)
	r.Register("script.risor", script.Risor())
	r.Register("script.starlark", script.Starlark())
	return r
}
