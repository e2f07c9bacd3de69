package webhook

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const labelUnknownValue = "unknown"

// Metrics provides instrumentation for webhook processing. A nil
// *Metrics is a valid no-op receiver so tests and minimal deployments
// can skip wiring a meter.
type Metrics struct {
	receivedTotal       metric.Int64Counter
	forwardedTotal      metric.Int64Counter
	failedTotal         metric.Int64Counter
	processingHistogram metric.Float64Histogram
}

// NewMetrics initializes webhook metrics using the provided meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error
	m.receivedTotal, err = meter.Int64Counter(
		"webhook_received_total",
		metric.WithDescription("Total webhook deliveries received"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook received counter: %w", err)
	}
	m.forwardedTotal, err = meter.Int64Counter(
		"webhook_forwarded_total",
		metric.WithDescription("Total issues forwarded as Asana tasks"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook forwarded counter: %w", err)
	}
	m.failedTotal, err = meter.Int64Counter(
		"webhook_failed_total",
		metric.WithDescription("Total forwarding failures by error kind"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook failed counter: %w", err)
	}
	m.processingHistogram, err = meter.Float64Histogram(
		"webhook_processing_duration_seconds",
		metric.WithDescription("Overall webhook processing duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(.005, .01, .025, .05, .1, .25, .5, 1, 2, 5, 10, 30),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook processing duration histogram: %w", err)
	}
	return m, nil
}

func (m *Metrics) OnReceived(ctx context.Context) {
	if m == nil || m.receivedTotal == nil {
		return
	}
	m.receivedTotal.Add(ctx, 1)
}

func (m *Metrics) OnForwarded(ctx context.Context) {
	if m == nil || m.forwardedTotal == nil {
		return
	}
	m.forwardedTotal.Add(ctx, 1)
}

func (m *Metrics) OnFailed(ctx context.Context, kind string) {
	if m == nil || m.failedTotal == nil {
		return
	}
	if kind == "" {
		kind = labelUnknownValue
	}
	m.failedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) ObserveProcessing(ctx context.Context, d time.Duration) {
	if m == nil || m.processingHistogram == nil {
		return
	}
	m.processingHistogram.Record(ctx, d.Seconds())
}
