package toml

import "errors"

var (
	ErrNoProjectFile = errors.New("project configuration file does not exist")
	ErrFailedToLoad  = errors.New("failed to load project configuration")
	ErrParseToml     = errors.New("failed to parse TOML")
)
