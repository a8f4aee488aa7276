package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxConcurrentProbes caps simultaneous RPC dials
const maxConcurrentProbes = 4

// NetworksCommand summarizes every network profile
var NetworksCommand = &cli.Command{
	Name:  "networks",
	Usage: "List network profiles and which of their variables are set",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "probe",
			Usage: "Query each configured endpoint for its chain id",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-endpoint probe timeout",
			Value: buildconfig.DefaultProbeTimeout,
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		cfg := common.ConfigFromContext(cCtx.Context)

		recordSelection(cCtx.Context, cfg.Networks)

		var probes map[string]string
		if cCtx.Bool("probe") {
			logger.Debug("Probing endpoints with timeout %s", cCtx.Duration("timeout"))
			probes = probeAll(cCtx.Context, cfg, cCtx.Duration("timeout"))
		}

		title := cases.Title(language.English)
		w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
		header := "NAME\tKIND\tURL\tACCOUNTS"
		if probes != nil {
			header += "\tCHAIN"
		}
		fmt.Fprintln(w, header)

		for _, spec := range buildconfig.NetworkSpecs() {
			n, _ := cfg.Network(spec.Name)
			urlState := "unset"
			if n.URL != "" {
				urlState = "set"
			}
			set := 0
			for _, a := range n.Accounts {
				if a != "" {
					set++
				}
			}
			line := fmt.Sprintf("%s\t%s\t%s\t%d/%d", n.Name, title.String(spec.Kind), urlState, set, len(n.Accounts))
			if probes != nil {
				line += "\t" + probes[n.Name]
			}
			fmt.Fprintln(w, line)
		}
		return w.Flush()
	},
}

// probeAll queries every profile with an endpoint; failures are reported per network, not returned
func probeAll(ctx context.Context, cfg *buildconfig.Configuration, timeout time.Duration) map[string]string {
	logger := common.LoggerFromContext(ctx)
	results := make([]string, len(cfg.Networks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i, n := range cfg.Networks {
		if n.URL == "" {
			results[i] = "-"
			continue
		}
		i, n := i, n
		g.Go(func() error {
			res, err := buildconfig.Probe(gctx, n, timeout)
			if err != nil {
				logger.Warn("Endpoint check failed: %v", err)
				results[i] = "unreachable"
				return nil
			}
			results[i] = fmt.Sprintf("%s (block %d, %s)", res.ChainID, res.Block, res.Latency.Round(time.Millisecond))
			return nil
		})
	}
	_ = g.Wait()

	probed, unreachable := 0, 0
	for _, r := range results {
		switch r {
		case "-":
		case "unreachable":
			probed++
			unreachable++
		default:
			probed++
		}
	}
	telemetry.RecordCount(ctx, telemetry.PropEndpointsProbed, probed)
	telemetry.RecordCount(ctx, telemetry.PropEndpointsUnreachable, unreachable)

	out := make(map[string]string, len(results))
	for i, n := range cfg.Networks {
		out[n.Name] = results[i]
	}
	return out
}
