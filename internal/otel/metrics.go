package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pane-pilot"

// Metrics holds all OTEL metric instruments for pane-pilot.
// All instruments are safe for concurrent use.
type Metrics struct {
	// Commands counts command invocations, partitioned by command name
	// and outcome (success, error).
	Commands metric.Int64Counter
	// CommandDuration records wall-clock command duration in milliseconds.
	CommandDuration metric.Float64Histogram
	// HostCalls counts multiplexer transport calls, partitioned by operation.
	HostCalls metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Commands, err = meter.Int64Counter("commands.total",
		metric.WithDescription("Total command invocations partitioned by command and outcome"))
	if err != nil {
		return nil, err
	}

	m.CommandDuration, err = meter.Float64Histogram("command.duration",
		metric.WithDescription("Wall-clock command duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	m.HostCalls, err = meter.Int64Counter("host.calls.total",
		metric.WithDescription("Multiplexer transport calls partitioned by operation"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCommand records one command invocation with its outcome and duration.
func (m *Metrics) RecordCommand(ctx context.Context, command, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	)
	m.Commands.Add(ctx, 1, attrs)
	m.CommandDuration.Record(ctx, float64(d.Milliseconds()),
		metric.WithAttributes(attribute.String("command", command)))
}

// RecordHostCall records one transport call against the multiplexer.
func (m *Metrics) RecordHostCall(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.HostCalls.Add(ctx, 1, metric.WithAttributes(attribute.String("host.op", op)))
}
