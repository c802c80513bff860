package loader

import "errors"

// Loader-specific errors
var (
	// ErrLoaderNotFound is returned when a symbolic loader reference cannot
	// be resolved to a registered loader.
	ErrLoaderNotFound = errors.New("loader not found")

	// ErrMalformedKwarg is returned when a raw keyword argument is not in
	// KEY=VALUE form.
	ErrMalformedKwarg = errors.New("malformed keyword argument")
)
