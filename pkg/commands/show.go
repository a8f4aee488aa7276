package commands

import (
	"fmt"
	"strings"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ShowCommand prints the resolved configuration
var ShowCommand = &cli.Command{
	Name:  "show",
	Usage: "Print the resolved build configuration as YAML",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "network",
			Usage: "Only print the named network profile",
		},
		&cli.BoolFlag{
			Name:  "reveal",
			Usage: "Print credentials and endpoint URLs unmasked",
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		cfg := common.ConfigFromContext(cCtx.Context)

		if !cCtx.Bool("reveal") {
			cfg = cfg.Redacted()
		} else {
			logger.Warn("Printing unmasked credentials")
		}

		var value any = cfg
		selected := cfg.Networks
		if name := cCtx.String("network"); name != "" {
			n, err := findNetwork(cfg, name)
			if err != nil {
				return err
			}
			value = n
			selected = []buildconfig.NetworkProfile{n}
		}
		recordSelection(cCtx.Context, selected)

		enc := yaml.NewEncoder(cCtx.App.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode configuration: %w", err)
		}
		return enc.Close()
	},
}

// findNetwork resolves a --network value or lists the valid names
func findNetwork(cfg *buildconfig.Configuration, name string) (buildconfig.NetworkProfile, error) {
	n, ok := cfg.Network(name)
	if !ok {
		return n, fmt.Errorf("unknown network %q (available: %s)", name, strings.Join(cfg.NetworkNames(), ", "))
	}
	return n, nil
}
