// Package assembly orchestrates configuration assembly: it validates the
// argument combination, picks the default or a custom loader, and contains
// any failure raised inside user-supplied loader code. Every error a caller
// sees from a custom loader belongs to one closed taxonomy; nothing foreign
// escapes this package.
//
// Each Assembly tracks one invocation: a UUID for log correlation, a finite
// state machine for the lifecycle, and a log collector whose records can be
// replayed when a failure is reported with debug detail.
package assembly

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheddar-build/cheddar/internal/config"
	"github.com/cheddar-build/cheddar/internal/config/assembly/finitestate"
	"github.com/cheddar-build/cheddar/internal/config/loader"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
)

// DefaultLoader produces a Configuration from the project directory alone.
// Its failures are passed through unmodified; only custom-loader failures
// are normalized.
type DefaultLoader func(ctx context.Context, dir string) (config.Configuration, error)

// Assembly represents a single configuration-assembly invocation.
type Assembly struct {
	// ID is the unique identifier for this assembly
	ID uuid.UUID

	CreatedAt time.Time

	fsm          finitestate.Machine
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	registry      *loader.Registry
	defaultLoader DefaultLoader
}

// Option configures an Assembly during construction.
type Option func(*Assembly)

// WithRegistry sets the loader registry used to resolve symbolic references.
func WithRegistry(r *loader.Registry) Option {
	return func(a *Assembly) {
		a.registry = r
	}
}

// WithDefaultLoader sets the loader used when no reference is supplied.
func WithDefaultLoader(fn DefaultLoader) Option {
	return func(a *Assembly) {
		a.defaultLoader = fn
	}
}

// New creates an Assembly writing its logs through the given handler.
func New(handler slog.Handler, opts ...Option) (*Assembly, error) {
	if handler == nil {
		handler = slog.Default().Handler()
	}

	id := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", id, err)
	}

	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With("assembly_id", id)

	a := &Assembly{
		ID:            id,
		CreatedAt:     time.Now(),
		fsm:           sm,
		logger:        logger,
		logCollector:  logCollector,
		registry:      loader.NewRegistry(),
		defaultLoader: nil,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.defaultLoader == nil {
		return nil, fmt.Errorf("%s assembly requires a default loader", id)
	}

	a.logger.Debug("Assembly created")
	return a, nil
}

// Assemble produces a Configuration for the directory. With an empty loader
// reference the default loader runs with the directory only; otherwise the
// reference is resolved, raw keyword arguments are parsed, and the resolved
// loader is invoked with the directory, the positional arguments in order,
// and the parsed keyword arguments.
func (a *Assembly) Assemble(
	ctx context.Context,
	dir string,
	ref string,
	args []string,
	rawKwargs []string,
) (config.Configuration, error) {
	if err := a.fsm.Transition(finitestate.StateValidating); err != nil {
		return nil, fmt.Errorf("assembly %s cannot be reused: %w", a.ID, err)
	}

	// Custom arguments are meaningless without a custom loader. Rejected
	// before any loader work, so no resolution is observable on this path.
	if (len(args) > 0 || len(rawKwargs) > 0) && ref == "" {
		return nil, a.fail(ErrLoaderArgsWithoutLoader)
	}

	if ref == "" {
		return a.assembleDefault(ctx, dir)
	}
	return a.assembleCustom(ctx, dir, ref, args, rawKwargs)
}

func (a *Assembly) assembleDefault(ctx context.Context, dir string) (config.Configuration, error) {
	if err := a.fsm.Transition(finitestate.StateLoadingDefault); err != nil {
		return nil, err
	}
	a.logger.Debug("Invoking default loader", "directory", dir)

	// Default-loader failures are the collaborator's own and propagate
	// unwrapped.
	cfg, err := a.defaultLoader(ctx, dir)
	if err != nil {
		return nil, a.fail(err)
	}
	return cfg, a.done(dir, "")
}

func (a *Assembly) assembleCustom(
	ctx context.Context,
	dir string,
	ref string,
	args []string,
	rawKwargs []string,
) (config.Configuration, error) {
	if err := a.fsm.Transition(finitestate.StateLoadingCustom); err != nil {
		return nil, err
	}

	kwargs, err := loader.ParseKwargs(rawKwargs)
	if err != nil {
		return nil, a.fail(err)
	}

	fn, err := a.registry.Resolve(ref)
	if err != nil {
		return nil, a.fail(err)
	}
	a.logger.Debug("Resolved custom loader", "reference", ref,
		"args", args, "kwargs", kwargs)

	cfg, err := a.invoke(ctx, fn, ref, dir, args, kwargs)
	if err != nil {
		return nil, a.fail(err)
	}
	return cfg, a.done(dir, ref)
}

// invoke runs a resolved custom loader and normalizes every failure it
// signals, whether an error return or a panic, into ErrLoaderExecution,
// embedding the original description and the loader reference.
func (a *Assembly) invoke(
	ctx context.Context,
	fn loader.Loader,
	ref string,
	dir string,
	args []string,
	kwargs map[string]string,
) (cfg config.Configuration, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg = nil
			err = fmt.Errorf("%w %q: panic: %v", ErrLoaderExecution, ref, r)
		}
	}()

	cfg, loadErr := fn(ctx, dir, args, kwargs)
	if loadErr != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrLoaderExecution, ref, loadErr)
	}
	return cfg, nil
}

// fail transitions the assembly to the failed state and returns err for
// chaining. A transition failure here means the machine was already
// terminal; the original error still wins.
func (a *Assembly) fail(err error) error {
	if terr := a.fsm.Transition(finitestate.StateFailed); terr != nil {
		a.logger.Error("Failed to mark assembly failed", "error", terr)
	}
	a.logger.Error("Assembly failed", "error", err)
	return err
}

func (a *Assembly) done(dir, ref string) error {
	if err := a.fsm.Transition(finitestate.StateAssembled); err != nil {
		return err
	}
	a.logger.Debug("Assembly complete",
		"directory", dir,
		"loader", refOrDefault(ref),
		"duration", time.Since(a.CreatedAt))
	return nil
}

func refOrDefault(ref string) string {
	if ref == "" {
		return "default"
	}
	return ref
}

// GetState returns the current lifecycle state of the assembly.
func (a *Assembly) GetState() string {
	return a.fsm.GetState()
}

// PlaybackLogs plays back the assembly's collected logs to the given
// handler. The entry point uses this to attach trace detail to a terminal
// failure when debug logging is on.
func (a *Assembly) PlaybackLogs(handler slog.Handler) error {
	return a.logCollector.PlayLogs(handler)
}

// IsCoreError reports whether err belongs to the closed taxonomy surfaced
// by the assembly core. The entry point treats these as terminal and logged;
// anything else is not specially handled at that boundary.
func IsCoreError(err error) bool {
	return errors.Is(err, ErrLoaderArgsWithoutLoader) ||
		errors.Is(err, ErrLoaderExecution) ||
		errors.Is(err, loader.ErrLoaderNotFound) ||
		errors.Is(err, loader.ErrMalformedKwarg)
}
