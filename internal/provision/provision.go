// Package provision executes an assembled build-environment configuration:
// it applies the configured environment, runs the configured installers for
// each package category, and then runs the build steps in order. Failures
// here are the runner's own and are not part of the assembly error taxonomy.
package provision

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/cheddar-build/cheddar/internal/config"
)

// categories lists the package groups provisioned before the build steps,
// in install order.
var categories = []string{
	config.KeySystemPackages,
	config.KeyToolchains,
	config.KeyPackages,
}

// Runner provisions a build environment in a project directory.
type Runner struct {
	dir    string
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner during construction.
type Option func(*Runner)

// WithLogger sets the structured logger used by the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOutput redirects the stdout and stderr of the executed commands.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// New creates a Runner rooted at the project directory.
func New(dir string, opts ...Option) *Runner {
	r := &Runner{
		dir:    dir,
		logger: slog.Default(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run provisions the environment described by the configuration. Installs
// run first, category by category, then the build steps in order; the first
// failure aborts the run.
func (r *Runner) Run(ctx context.Context, cfg config.Configuration) error {
	env := r.buildEnv(cfg)

	installers := cfg.StringMap(config.KeyInstallers)
	for _, category := range categories {
		items := cfg.Strings(category)
		if len(items) == 0 {
			continue
		}

		installer, ok := installers[category]
		if !ok || installer == "" {
			r.logger.Debug("No installer configured, skipping category",
				"category", category, "items", items)
			continue
		}

		command := installer + " " + strings.Join(items, " ")
		r.logger.Info("Installing", "category", category, "count", len(items))
		if err := r.runCommand(ctx, command, env); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInstallFailed, category, err)
		}
	}

	steps := cfg.Strings(config.KeySteps)
	for i, step := range steps {
		r.logger.Info("Running step", "index", i, "command", step)
		if err := r.runCommand(ctx, step, env); err != nil {
			return fmt.Errorf("%w: step %d %q: %w", ErrStepFailed, i, step, err)
		}
	}

	r.logger.Info("Provisioning complete", "steps", len(steps))
	return nil
}

// buildEnv overlays the configured environment onto the process environment.
func (r *Runner) buildEnv(cfg config.Configuration) []string {
	env := os.Environ()
	for k, v := range cfg.StringMap(config.KeyEnvironment) {
		env = append(env, k+"="+v)
	}
	return env
}

func (r *Runner) runCommand(ctx context.Context, command string, env []string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = r.dir
	cmd.Env = env
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return cmd.Run()
}
