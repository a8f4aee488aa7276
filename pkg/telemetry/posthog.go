package telemetry

import (
	"context"
	"os"

	"github.com/mellis0303/hhconfig/pkg/common"

	"github.com/posthog/posthog-go"
)

// PostHogClient implements the Client interface using PostHog
type PostHogClient struct {
	namespace      string
	client         posthog.Client
	appEnvironment *common.AppEnvironment
}

// NewClient returns a PostHog client when a key is configured and a NoopClient otherwise
func NewClient(environment *common.AppEnvironment, namespace string) Client {
	if environment == nil {
		return NewNoopClient()
	}
	c, err := NewPostHogClient(environment, namespace)
	if err != nil || c == nil {
		return NewNoopClient()
	}
	return c
}

// NewPostHogClient returns nil without error when no API key is set
func NewPostHogClient(environment *common.AppEnvironment, namespace string) (*PostHogClient, error) {
	apiKey := os.Getenv(common.PostHogKeyEnv)
	if apiKey == "" {
		return nil, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: getPostHogEndpoint()})
	if err != nil {
		return nil, err
	}
	return &PostHogClient{
		namespace:      namespace,
		client:         client,
		appEnvironment: environment,
	}, nil
}

func (c *PostHogClient) AddMetric(_ context.Context, metric Metric) error {
	if c == nil || c.client == nil {
		return nil
	}

	props := make(map[string]interface{})
	props["name"] = metric.Name
	props["value"] = metric.Value
	props["cli_version"] = c.appEnvironment.CLIVersion
	for k, v := range metric.Dimensions {
		props[k] = v
	}

	return c.client.Enqueue(posthog.Capture{
		DistinctId: c.appEnvironment.RunID,
		Event:      c.namespace,
		Properties: props,
	})
}

func (c *PostHogClient) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	// Ignore any errors from Close operations
	_ = c.client.Close()
	return nil
}

func getPostHogEndpoint() string {
	if endpoint := os.Getenv(common.PostHogEndpointEnv); endpoint != "" {
		return endpoint
	}
	return common.DefaultPostHogEndpoint
}
