package main

import (
	"github.com/cheddar-build/cheddar/internal/logging"
)

// SetupLogger configures the default logger based on provided log level
func SetupLogger(logLevel string) {
	logging.SetupLogger(logLevel)
}

// logLevel maps the debug flag to a level for SetupLogger. The default
// level is informational; debug raises it to maximal detail.
func logLevel(debug bool) string {
	if debug {
		return "debug"
	}
	return "info"
}
