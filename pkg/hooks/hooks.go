package hooks

import (
	"fmt"
	"time"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/urfave/cli/v2"
)

type ActionChain struct {
	Processors []func(action cli.ActionFunc) cli.ActionFunc
}

// NewActionChain creates a new action chain
func NewActionChain() *ActionChain {
	return &ActionChain{
		Processors: make([]func(action cli.ActionFunc) cli.ActionFunc, 0),
	}
}

// Use appends a new processor to the chain
func (ac *ActionChain) Use(processor func(action cli.ActionFunc) cli.ActionFunc) {
	ac.Processors = append(ac.Processors, processor)
}

// Wrap applies processors so the first registered runs outermost
func (ac *ActionChain) Wrap(action cli.ActionFunc) cli.ActionFunc {
	for i := len(ac.Processors) - 1; i >= 0; i-- {
		action = ac.Processors[i](action)
	}
	return action
}

func ApplyMiddleware(commands []*cli.Command, chain *ActionChain) {
	for _, cmd := range commands {
		if cmd.Action != nil {
			cmd.Action = chain.Wrap(cmd.Action)
		}
		if len(cmd.Subcommands) > 0 {
			ApplyMiddleware(cmd.Subcommands, chain)
		}
	}
}

// SetupContext is the app Before hook: it installs the logger, the run
// environment and the configuration resolved from the process environment
// layered over --env-file.
func SetupContext(cCtx *cli.Context) error {
	log := common.GetLoggerFromCLIContext(cCtx)
	ctx := common.WithLogger(cCtx.Context, log)
	ctx = common.WithAppEnvironment(ctx)

	envFile := cCtx.String("env-file")
	lookup, err := buildconfig.DotenvLookup(envFile)
	if err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	log.Debug("Resolved environment (env file %s)", envFile)

	cCtx.Context = common.WithConfig(ctx, buildconfig.Load(lookup))
	return nil
}

// newTelemetryClient is replaced in tests
var newTelemetryClient = setupTelemetry

func setupTelemetry(ctx *cli.Context) telemetry.Client {
	if ctx.Bool("disable-telemetry") {
		return telemetry.NewNoopClient()
	}
	appEnv, ok := common.AppEnvironmentFromContext(ctx.Context)
	if !ok {
		return telemetry.NewNoopClient()
	}
	return telemetry.NewClient(appEnv, common.AppName)
}

// WithMetricEmission records invocation metrics around action and ships them after it returns
func WithMetricEmission(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if err := WithCommandMetricsContext(ctx); err != nil {
			return err
		}

		err := action(ctx)

		client := newTelemetryClient(ctx)
		ctx.Context = telemetry.ContextWithClient(ctx.Context, client)
		emitTelemetryMetrics(ctx, err)

		return err
	}
}

func emitTelemetryMetrics(ctx *cli.Context, actionError error) {
	metrics, err := telemetry.MetricsFromContext(ctx.Context)
	if err != nil {
		return
	}
	metrics.Properties["command"] = ctx.Command.HelpName
	result := "Success"
	dimensions := map[string]string{}
	if actionError != nil {
		result = "Failure"
		dimensions["error"] = actionError.Error()
	}
	metrics.AddMetricWithDimensions(result, 1, dimensions)

	duration := time.Since(metrics.StartTime).Milliseconds()
	metrics.AddMetric("DurationMilliseconds", float64(duration))

	client, ok := telemetry.ClientFromContext(ctx.Context)
	if !ok {
		return
	}
	defer client.Close()

	log := common.LoggerFromContext(ctx.Context)
	for _, metric := range metrics.Metrics {
		for k, v := range metrics.Properties {
			metric.Dimensions[k] = v
		}
		if err := client.AddMetric(ctx.Context, metric); err != nil {
			log.Debug("failed to add metric: %v", err)
		}
	}
}

// WithCommandMetricsContext starts a metrics context for the current command
func WithCommandMetricsContext(ctx *cli.Context) error {
	metrics := telemetry.NewMetricsContext()
	ctx.Context = telemetry.WithMetricsContext(ctx.Context, metrics)

	if appEnv, ok := common.AppEnvironmentFromContext(ctx.Context); ok {
		metrics.Properties["cli_version"] = appEnv.CLIVersion
		metrics.Properties["os"] = appEnv.OS
		metrics.Properties["arch"] = appEnv.Arch
	}

	for k, v := range collectFlagValues(ctx) {
		metrics.Properties[k] = fmt.Sprintf("%v", v)
	}

	metrics.AddMetric("Count", 1)
	return nil
}

// collectFlagValues records which flags were set; string values are not
// recorded since they may name files or networks
func collectFlagValues(ctx *cli.Context) map[string]interface{} {
	flags := make(map[string]interface{})
	record := func(fs []cli.Flag) {
		for _, flag := range fs {
			name := flag.Names()[0]
			if !ctx.IsSet(name) {
				continue
			}
			if _, isBool := flag.(*cli.BoolFlag); isBool {
				flags[name] = ctx.Bool(name)
				continue
			}
			flags[name] = "set"
		}
	}

	if ctx.App != nil {
		record(ctx.App.Flags)
	}
	if ctx.Command != nil {
		record(ctx.Command.Flags)
	}
	return flags
}
