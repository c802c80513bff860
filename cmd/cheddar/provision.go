package main

import (
	"context"
	"log/slog"

	"github.com/cheddar-build/cheddar/internal/config"
	"github.com/cheddar-build/cheddar/internal/config/assembly"
	tomlloader "github.com/cheddar-build/cheddar/internal/config/loader/toml"
	"github.com/cheddar-build/cheddar/internal/logging"
	"github.com/cheddar-build/cheddar/internal/provision"
	"github.com/urfave/cli/v3"
)

// loaderFlags is the flag set shared by the root command and inspect.
var loaderFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "loader",
		Aliases: []string{"l"},
		Usage:   "Symbolic reference of a custom loader (container.name form)",
	},
	&cli.StringSliceFlag{
		Name:    "loader-arg",
		Aliases: []string{"a"},
		Usage:   "Positional argument passed to the custom loader, repeatable, order-preserving",
	},
	&cli.StringSliceFlag{
		Name:    "loader-kwarg",
		Aliases: []string{"k"},
		Usage:   "KEY=VALUE keyword argument passed to the custom loader, repeatable",
	},
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging and trace detail on terminal errors",
	},
}

func provisionAction(ctx context.Context, cmd *cli.Command) error {
	cfg, dir, err := assembleFromFlags(ctx, cmd)
	if err != nil {
		return err
	}

	runner := provision.New(dir, provision.WithLogger(
		slog.Default().With("component", "provision")))
	return runner.Run(ctx, cfg)
}

// assembleFromFlags runs the shared front half of every command: logging
// setup first, then configuration assembly from the CLI inputs. Failures
// from the recognized taxonomy are logged and converted to exit status 1
// here; anything else is returned untouched.
func assembleFromFlags(
	ctx context.Context,
	cmd *cli.Command,
) (config.Configuration, string, error) {
	debug := cmd.Bool("debug")
	SetupLogger(logLevel(debug))

	dir := cmd.Args().Get(0)
	if dir == "" {
		dir = "."
	}

	asm, err := assembly.New(
		slog.Default().Handler(),
		assembly.WithRegistry(defaultRegistry()),
		assembly.WithDefaultLoader(tomlloader.Load),
	)
	if err != nil {
		return nil, "", err
	}

	cfg, err := asm.Assemble(
		ctx,
		dir,
		cmd.String("loader"),
		cmd.StringSlice("loader-arg"),
		cmd.StringSlice("loader-kwarg"),
	)
	if err != nil {
		return nil, "", reportError(asm, err, debug)
	}
	return cfg, dir, nil
}

// reportError handles a terminal assembly failure. Only the closed taxonomy
// is treated specially: log it, replay the assembly trace when debug is on,
// and exit with status 1. Unrecognized failures pass through.
func reportError(asm *assembly.Assembly, err error, debug bool) error {
	if !assembly.IsCoreError(err) {
		return err
	}

	slog.Error("Configuration assembly failed", "error", err)
	if debug {
		if perr := asm.PlaybackLogs(logging.SetupHandlerText("trace", nil)); perr != nil {
			slog.Warn("Failed to replay assembly logs", "error", perr)
		}
	}
	return cli.Exit("", 1)
}
