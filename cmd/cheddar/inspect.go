package main

import (
	"context"
	"fmt"

	"github.com/cheddar-build/cheddar/internal/fancy"
	"github.com/urfave/cli/v3"
)

var inspectCmd = &cli.Command{
	Name:      "inspect",
	Usage:     "Assemble the configuration and print it without provisioning",
	ArgsUsage: "[directory]",
	Flags:     loaderFlags,
	Action:    inspectAction,
}

func inspectAction(ctx context.Context, cmd *cli.Command) error {
	cfg, dir, err := assembleFromFlags(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Println(fancy.InfoStyle.Render("Assembled configuration for " + dir))
	fmt.Println()
	fmt.Println(cfg)
	return nil
}
