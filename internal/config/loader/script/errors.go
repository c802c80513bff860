package script

import "errors"

var (
	ErrNoScriptPath      = errors.New("no script path provided")
	ErrLoaderCreation    = errors.New("failed to create script loader")
	ErrCompilationFailed = errors.New("script compilation failed")
	ErrScriptData        = errors.New("failed to prepare script data")
	ErrEvaluation        = errors.New("script evaluation failed")
	ErrBadResult         = errors.New("unexpected script result")
)
