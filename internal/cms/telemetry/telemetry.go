// Package telemetry wires the OpenTelemetry metric pipeline into the
// Prometheus registry served at /metrics.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics owns the meter provider and the application-level instruments.
type Metrics struct {
	provider *sdkmetric.MeterProvider

	// ScheduleSweeps counts background publish schedule sweeps.
	ScheduleSweeps metric.Int64Counter
	// ScheduleApplied counts transitions applied by the sweeper.
	ScheduleApplied metric.Int64Counter
}

// New sets up the otel metric pipeline: a Prometheus exporter on the default
// registry, Go runtime instrumentation and the application instruments.
func New() (*Metrics, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	if err := runtime.Start(runtime.WithMeterProvider(provider)); err != nil {
		return nil, fmt.Errorf("failed to start runtime instrumentation: %w", err)
	}

	meter := provider.Meter("github.com/siteforge-dev/siteforge")

	sweeps, err := meter.Int64Counter("siteforge.schedule.sweeps",
		metric.WithDescription("Background publish schedule sweeps"))
	if err != nil {
		return nil, err
	}
	applied, err := meter.Int64Counter("siteforge.schedule.applied",
		metric.WithDescription("Publish transitions applied by the sweeper"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		provider:        provider,
		ScheduleSweeps:  sweeps,
		ScheduleApplied: applied,
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
