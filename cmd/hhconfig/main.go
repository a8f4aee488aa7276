package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mellis0303/hhconfig/internal/version"
	"github.com/mellis0303/hhconfig/pkg/commands"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/hooks"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx := common.WithShutdown(context.Background())

	app := &cli.App{
		Name:                   common.AppName,
		Usage:                  "Resolve, check and export the contract build configuration",
		Version:                version.GetVersion(),
		Flags:                  common.GlobalFlags,
		Before:                 hooks.SetupContext,
		Commands:               commands.All(),
		UseShortOptionHandling: true,
	}

	actionChain := hooks.NewActionChain()
	actionChain.Use(hooks.WithMetricEmission)
	hooks.ApplyMiddleware(app.Commands, actionChain)

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
