package common

import (
	"context"
	"testing"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerContext(t *testing.T) {
	l := logger.NewNoopLogger()
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, LoggerFromContext(ctx))

	// fallback never returns nil
	assert.NotNil(t, LoggerFromContext(context.Background()))
}

func TestConfigContext(t *testing.T) {
	cfg := buildconfig.Load(buildconfig.MapLookup(map[string]string{"OKX_Mainnet_Key": "https://okx.example"}))
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, ConfigFromContext(ctx))

	fallback := ConfigFromContext(context.Background())
	require.NotNil(t, fallback)
	assert.Len(t, fallback.Networks, len(buildconfig.NetworkSpecs()))
}

func TestAppEnvironment(t *testing.T) {
	_, ok := AppEnvironmentFromContext(context.Background())
	assert.False(t, ok)

	env, ok := AppEnvironmentFromContext(WithAppEnvironment(context.Background()))
	require.True(t, ok)
	assert.NotEmpty(t, env.RunID)
	assert.Equal(t, "Development", env.CLIVersion)

	other, _ := AppEnvironmentFromContext(WithAppEnvironment(context.Background()))
	assert.NotEqual(t, env.RunID, other.RunID)
}

func TestWithShutdown_CancelsWithParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := WithShutdown(parent)
	cancel()
	<-ctx.Done()
	assert.Error(t, ctx.Err())
}
