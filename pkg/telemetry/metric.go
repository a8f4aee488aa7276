package telemetry

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// MetricsContext collects metrics for one command invocation.
// Properties describe the invocation only, never configuration values.
type MetricsContext struct {
	StartTime  time.Time         `json:"start_time"`
	Metrics    []Metric          `json:"metrics"`
	Properties map[string]string `json:"properties"`
}

type Metric struct {
	Value      float64           `json:"value"`
	Name       string            `json:"name"`
	Dimensions map[string]string `json:"dimensions"`
}

// Properties commands attach to their invocation. Values are counts or
// enum names; endpoint URLs and keys are never recorded.
const (
	PropNetworks             = "networks"
	PropEndpointsSet         = "endpoints_set"
	PropCredentialsSet       = "credentials_set"
	PropExportFormat         = "export_format"
	PropValidationErrors     = "validation_errors"
	PropValidationWarnings   = "validation_warnings"
	PropEndpointsProbed      = "endpoints_probed"
	PropEndpointsUnreachable = "endpoints_unreachable"
)

type metricsContextKey struct{}

// ErrNoMetricsContext is returned when a context carries no MetricsContext
var ErrNoMetricsContext = errors.New("no metrics context")

func WithMetricsContext(ctx context.Context, metrics *MetricsContext) context.Context {
	return context.WithValue(ctx, metricsContextKey{}, metrics)
}

func MetricsFromContext(ctx context.Context) (*MetricsContext, error) {
	metrics, ok := ctx.Value(metricsContextKey{}).(*MetricsContext)
	if !ok {
		return &MetricsContext{}, ErrNoMetricsContext
	}
	return metrics, nil
}

func NewMetricsContext() *MetricsContext {
	return &MetricsContext{
		StartTime:  time.Now(),
		Metrics:    make([]Metric, 0),
		Properties: make(map[string]string),
	}
}

func (m *MetricsContext) AddMetric(name string, value float64) {
	m.AddMetricWithDimensions(name, value, make(map[string]string))
}

func (m *MetricsContext) AddMetricWithDimensions(name string, value float64, dimensions map[string]string) {
	m.Metrics = append(m.Metrics, Metric{
		Name:       name,
		Value:      value,
		Dimensions: dimensions,
	})
}

func (m *MetricsContext) SetProperty(key, value string) {
	if m.Properties == nil {
		m.Properties = make(map[string]string)
	}
	m.Properties[key] = value
}

func (m *MetricsContext) SetCount(key string, n int) {
	m.SetProperty(key, strconv.Itoa(n))
}

// RecordProperty sets key on the invocation's metrics context.
// Without a metrics context it does nothing.
func RecordProperty(ctx context.Context, key, value string) {
	if m, err := MetricsFromContext(ctx); err == nil {
		m.SetProperty(key, value)
	}
}

// RecordCount is RecordProperty for counters
func RecordCount(ctx context.Context, key string, n int) {
	RecordProperty(ctx, key, strconv.Itoa(n))
}

// RecordSelection records how many networks a command worked on and how
// many of them had an endpoint and at least one credential set.
func RecordSelection(ctx context.Context, networks, endpoints, credentials int) {
	RecordCount(ctx, PropNetworks, networks)
	RecordCount(ctx, PropEndpointsSet, endpoints)
	RecordCount(ctx, PropCredentialsSet, credentials)
}
