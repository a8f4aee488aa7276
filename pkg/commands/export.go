package commands

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/urfave/cli/v2"
)

// ExportCommand writes the configuration in the shape the contract build framework reads
var ExportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write the resolved configuration as a framework config document",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: json or yaml",
			Value: buildconfig.FormatJSON,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "omit-unset",
			Usage: "Drop unset credentials and URLs instead of writing empty entries",
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		cfg := common.ConfigFromContext(cCtx.Context)

		doc := cfg.FrameworkDocument(buildconfig.ExportOptions{OmitUnset: cCtx.Bool("omit-unset")})

		var buf bytes.Buffer
		if err := buildconfig.Export(&buf, doc, cCtx.String("format")); err != nil {
			return err
		}
		recordSelection(cCtx.Context, cfg.Networks)
		telemetry.RecordProperty(cCtx.Context, telemetry.PropExportFormat, strings.ToLower(cCtx.String("format")))

		out := cCtx.String("output")
		if out == "" {
			_, err := cCtx.App.Writer.Write(buf.Bytes())
			return err
		}

		// The document holds private keys
		if err := os.WriteFile(out, buf.Bytes(), 0600); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("Wrote %s configuration to %s", cCtx.String("format"), out)
		return nil
	},
}
