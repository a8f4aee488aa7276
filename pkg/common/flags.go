package common

import (
	"github.com/mellis0303/hhconfig/pkg/buildconfig"

	"github.com/urfave/cli/v2"
)

// GlobalFlags apply to every command
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose logging",
	},
	&cli.StringFlag{
		Name:    "env-file",
		Usage:   "Dotenv file layered under the process environment",
		Value:   buildconfig.DefaultEnvFile,
		EnvVars: []string{"HHCONFIG_ENV_FILE"},
	},
	&cli.BoolFlag{
		Name:  "disable-telemetry",
		Usage: "Do not send usage metrics even when a telemetry key is configured",
	},
}
