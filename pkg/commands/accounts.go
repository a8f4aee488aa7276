package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// AccountsCommand prints the signer addresses a network profile would use
var AccountsCommand = &cli.Command{
	Name:  "accounts",
	Usage: "Derive the signer addresses configured for a network",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "network",
			Usage:    "Network profile to inspect",
			Required: true,
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		cfg := common.ConfigFromContext(cCtx.Context)

		n, err := findNetwork(cfg, cCtx.String("network"))
		if err != nil {
			return err
		}
		recordSelection(cCtx.Context, []buildconfig.NetworkProfile{n})

		accounts, err := buildconfig.Accounts(n)
		if err != nil {
			return fmt.Errorf("derive accounts: %w", err)
		}
		if len(accounts) == 0 {
			logger.Warn("No credentials set for %s (expected %v)", n.Name, buildconfig.CredentialVariables())
			return nil
		}

		w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tVARIABLE\tADDRESS")
		for _, a := range accounts {
			fmt.Fprintf(w, "%d\t%s\t%s\n", a.Index, a.EnvVar, a.Address.Hex())
		}
		return w.Flush()
	},
}
