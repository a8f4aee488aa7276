package commands

import (
	"fmt"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/urfave/cli/v2"
)

// ValidateCommand checks endpoints and credentials without contacting any chain
var ValidateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Check endpoint URLs and signing keys of every network",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail on warnings (unset variables) as well as errors",
		},
		&cli.StringSliceFlag{
			Name:  "network",
			Usage: "Limit the check to these networks (repeatable)",
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		cfg := common.ConfigFromContext(cCtx.Context)

		if only := cCtx.StringSlice("network"); len(only) > 0 {
			subset := cfg.Clone()
			subset.Networks = subset.Networks[:0]
			for _, name := range only {
				n, err := findNetwork(cfg, name)
				if err != nil {
					return err
				}
				subset.Networks = append(subset.Networks, n)
			}
			cfg = subset
		}

		issues := buildconfig.Validate(cfg)
		errs, warns := 0, 0
		for _, issue := range issues {
			fmt.Fprintln(cCtx.App.Writer, issue.String())
			if issue.Severity == buildconfig.SeverityError {
				errs++
			} else {
				warns++
			}
		}
		recordSelection(cCtx.Context, cfg.Networks)
		telemetry.RecordCount(cCtx.Context, telemetry.PropValidationErrors, errs)
		telemetry.RecordCount(cCtx.Context, telemetry.PropValidationWarnings, warns)
		logger.Info("Checked %d networks: %d errors, %d warnings", len(cfg.Networks), errs, warns)

		if buildconfig.HasErrors(issues, cCtx.Bool("strict")) {
			return cli.Exit(fmt.Sprintf("validation failed: %d errors, %d warnings", errs, warns), 1)
		}
		return nil
	},
}
