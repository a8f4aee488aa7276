package testutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common"
	"github.com/mellis0303/hhconfig/pkg/common/logger"
	"github.com/mellis0303/hhconfig/pkg/telemetry"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"
)

// DevKeys are the well-known local development keys; never fund them on a live chain
var DevKeys = []string{
	"0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
}

// DevAddress derives the checksummed address of DevKeys[i]
func DevAddress(t *testing.T, i int) string {
	t.Helper()
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(DevKeys[i], "0x"))
	if err != nil {
		t.Fatalf("parse dev key %d: %v", i, err)
	}
	return crypto.PubkeyToAddress(pk.PublicKey).Hex()
}

// TestApp is a CLI app whose output and logs are captured
type TestApp struct {
	App    *cli.App
	Out    *bytes.Buffer
	Logger *logger.NoopLogger
	// Metrics receives the properties commands record for telemetry
	Metrics *telemetry.MetricsContext
}

// NewTestApp wires cmd into an app that resolves its configuration from env
// instead of the process environment and logs to a buffering logger.
func NewTestApp(t *testing.T, cmd *cli.Command, env map[string]string) *TestApp {
	t.Helper()
	out := &bytes.Buffer{}
	noopLogger := logger.NewNoopLogger()
	metrics := telemetry.NewMetricsContext()
	app := &cli.App{
		Name:     common.AppName,
		HelpName: common.AppName,
		Writer:   out,
		Flags:    common.GlobalFlags,
		Before: func(cCtx *cli.Context) error {
			ctx := common.WithLogger(cCtx.Context, noopLogger)
			ctx = common.WithConfig(ctx, buildconfig.Load(buildconfig.MapLookup(env)))
			ctx = telemetry.WithMetricsContext(ctx, metrics)
			cCtx.Context = ctx
			return nil
		},
		Commands:       []*cli.Command{cmd},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return &TestApp{App: app, Out: out, Logger: noopLogger, Metrics: metrics}
}

// Run executes the app with args after the binary name
func (a *TestApp) Run(args ...string) error {
	return a.App.Run(append([]string{common.AppName}, args...))
}

// FullEnv sets every network URL to https://<name>.example and every credential to DevKeys
func FullEnv() map[string]string {
	env := make(map[string]string)
	for _, spec := range buildconfig.NetworkSpecs() {
		env[spec.URLEnv] = "https://" + spec.Name + ".example/v2/api-key"
	}
	for i, name := range buildconfig.CredentialVariables() {
		env[name] = DevKeys[i]
	}
	return env
}
