package commands

import (
	"context"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/commands/version"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/urfave/cli/v2"
)

// All returns every top-level command in help order
func All() []*cli.Command {
	return []*cli.Command{
		ShowCommand,
		NetworksCommand,
		AccountsCommand,
		ValidateCommand,
		ExportCommand,
		EnvCommand,
		version.VersionCommand,
	}
}

// recordSelection attaches counts for the networks a command worked on
func recordSelection(ctx context.Context, networks []buildconfig.NetworkProfile) {
	endpoints, credentials := 0, 0
	for _, n := range networks {
		if n.URL != "" {
			endpoints++
		}
		for _, a := range n.Accounts {
			if a != "" {
				credentials++
				break
			}
		}
	}
	telemetry.RecordSelection(ctx, len(networks), endpoints, credentials)
}
