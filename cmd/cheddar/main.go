package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// rootCommand builds the cheddar CLI. The root action assembles the
// configuration for the directory argument and provisions it; subcommands
// share the same loader flags.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:      "cheddar",
		Version:   Version,
		Usage:     "Assemble a build-environment configuration and provision it",
		ArgsUsage: "[directory]",
		Flags:     loaderFlags,
		Action:    provisionAction,
		Commands: []*cli.Command{
			inspectCmd,
			versionCmd,
		},
	}
}

func main() {
	if err := rootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
