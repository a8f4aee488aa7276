package telemetry

import (
	"context"
	"testing"

	"github.com/mellis0303/hhconfig/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopClient(t *testing.T) {
	client := NewNoopClient()
	assert.True(t, IsNoopClient(client))

	err := client.AddMetric(context.Background(), Metric{
		Name:       "Count",
		Value:      1,
		Dimensions: map[string]string{"command": "hhconfig show"},
	})
	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestContext(t *testing.T) {
	client := NewNoopClient()
	ctx := ContextWithClient(context.Background(), client)

	retrieved, ok := ClientFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, client, retrieved)

	_, ok = ClientFromContext(context.Background())
	assert.False(t, ok)
}

func TestMetricsContext(t *testing.T) {
	_, err := MetricsFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoMetricsContext)

	m := NewMetricsContext()
	m.AddMetric("Count", 1)
	m.AddMetricWithDimensions("Failure", 1, map[string]string{"error": "boom"})

	got, err := MetricsFromContext(WithMetricsContext(context.Background(), m))
	require.NoError(t, err)
	require.Len(t, got.Metrics, 2)
	assert.Equal(t, "boom", got.Metrics[1].Dimensions["error"])
	assert.NotNil(t, got.Metrics[0].Dimensions)
}

func TestNewClient_NoKeyIsNoop(t *testing.T) {
	t.Setenv(common.PostHogKeyEnv, "")
	env := common.NewAppEnvironment("linux", "amd64", "run-id")
	assert.True(t, IsNoopClient(NewClient(env, common.AppName)))
	assert.True(t, IsNoopClient(NewClient(nil, common.AppName)))
}

func TestNewClient_WithKey(t *testing.T) {
	t.Setenv(common.PostHogKeyEnv, "phc_test")
	t.Setenv(common.PostHogEndpointEnv, "http://127.0.0.1:1")

	client := NewClient(common.NewAppEnvironment("linux", "amd64", "run-id"), common.AppName)
	_, isPostHog := client.(*PostHogClient)
	assert.True(t, isPostHog)
	assert.NoError(t, client.Close())
}

func TestRecordProperty(t *testing.T) {
	// without a metrics context recording is a no-op
	RecordProperty(context.Background(), PropExportFormat, "yaml")
	RecordSelection(context.Background(), 9, 1, 1)

	m := NewMetricsContext()
	ctx := WithMetricsContext(context.Background(), m)
	RecordProperty(ctx, PropExportFormat, "yaml")
	RecordSelection(ctx, 9, 2, 1)
	RecordCount(ctx, PropEndpointsUnreachable, 0)

	assert.Equal(t, map[string]string{
		PropExportFormat:         "yaml",
		PropNetworks:             "9",
		PropEndpointsSet:         "2",
		PropCredentialsSet:       "1",
		PropEndpointsUnreachable: "0",
	}, m.Properties)
}

func TestMetricsContext_SetPropertyOnZeroValue(t *testing.T) {
	var m MetricsContext
	m.SetCount(PropValidationErrors, 3)
	assert.Equal(t, "3", m.Properties[PropValidationErrors])
}
