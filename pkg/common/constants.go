package common

// Application constants
const (
	// AppName is the binary name and the telemetry namespace
	AppName = "hhconfig"

	// PostHogKeyEnv enables telemetry when set
	PostHogKeyEnv = "HHCONFIG_POSTHOG_KEY"

	// PostHogEndpointEnv overrides the telemetry endpoint
	PostHogEndpointEnv = "HHCONFIG_POSTHOG_ENDPOINT"

	// DefaultPostHogEndpoint is used when no override is set
	DefaultPostHogEndpoint = "https://us.i.posthog.com"
)
