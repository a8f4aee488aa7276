package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"

	"github.com/urfave/cli/v2"
)

// EnvCommand lists every variable the configuration reads
var EnvCommand = &cli.Command{
	Name:  "env",
	Usage: "List the environment variables the configuration consumes",
	Action: func(cCtx *cli.Context) error {
		cfg := common.ConfigFromContext(cCtx.Context)

		w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VARIABLE\tUSED BY\tSTATE")
		for _, spec := range buildconfig.NetworkSpecs() {
			n, _ := cfg.Network(spec.Name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", spec.URLEnv, spec.Name, state(n.URL))
		}

		// Credentials are shared, so any profile shows their state
		var accounts []string
		if len(cfg.Networks) > 0 {
			accounts = cfg.Networks[0].Accounts
		}
		for i, name := range buildconfig.CredentialVariables() {
			value := ""
			if i < len(accounts) {
				value = accounts[i]
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, "all networks", state(value))
		}
		return w.Flush()
	},
}

func state(v string) string {
	if v == "" {
		return "unset"
	}
	return "set"
}
