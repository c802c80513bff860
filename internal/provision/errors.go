package provision

import "errors"

var (
	ErrInstallFailed = errors.New("package installation failed")
	ErrStepFailed    = errors.New("build step failed")
)
