package telemetry

import "context"

// NoopClient drops every metric; the default when no telemetry key is set
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) AddMetric(_ context.Context, _ Metric) error {
	return nil
}

func (c *NoopClient) Close() error {
	return nil
}

// IsNoopClient checks if the client is a NoopClient (disabled telemetry)
func IsNoopClient(client Client) bool {
	_, isNoop := client.(*NoopClient)
	return isNoop
}
