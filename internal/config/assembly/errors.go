package assembly

import "errors"

// Assembly-specific errors. Together with loader.ErrLoaderNotFound and
// loader.ErrMalformedKwarg these form the closed taxonomy the entry point
// recognizes; IsCoreError reports membership.
var (
	// ErrLoaderArgsWithoutLoader is returned when positional or keyword
	// loader arguments are supplied without a custom loader reference.
	ErrLoaderArgsWithoutLoader = errors.New(
		"additional loader arguments can only be used with a custom loader")

	// ErrLoaderExecution is returned when a resolved custom loader fails
	// during invocation, for any reason. The original failure's description
	// is embedded in the message.
	ErrLoaderExecution = errors.New("error executing loader")
)
