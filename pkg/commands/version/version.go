package version

import (
	"fmt"

	"github.com/mellis0303/hhconfig/internal/version"

	"github.com/urfave/cli/v2"
)

// VersionCommand prints build information
var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the version of hhconfig",
	Action: func(cCtx *cli.Context) error {
		return VersionRun(cCtx)
	},
}

func VersionRun(cCtx *cli.Context) error {
	_, err := fmt.Fprintf(cCtx.App.Writer, "Version: %s\nCommit: %s\n", version.GetVersion(), version.GetCommit())
	return err
}
