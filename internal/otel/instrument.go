package otel

import (
	"context"

	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/layout"
)

// InstrumentHost wraps a Host so every transport call increments the
// host.calls.total counter. The wrapped host is otherwise transparent.
func InstrumentHost(h host.Host, m *Metrics) host.Host {
	if m == nil {
		return h
	}
	return &instrumentedHost{inner: h, metrics: m}
}

type instrumentedHost struct {
	inner   host.Host
	metrics *Metrics
}

func (h *instrumentedHost) Name() string { return h.inner.Name() }

func (h *instrumentedHost) Snapshot(ctx context.Context) (*layout.Snapshot, error) {
	h.metrics.RecordHostCall(ctx, "snapshot")
	return h.inner.Snapshot(ctx)
}

func (h *instrumentedHost) CaptureLines(ctx context.Context, paneID string) ([]string, error) {
	h.metrics.RecordHostCall(ctx, "capture")
	return h.inner.CaptureLines(ctx, paneID)
}

func (h *instrumentedHost) SendInput(ctx context.Context, paneID, data string) error {
	h.metrics.RecordHostCall(ctx, "send")
	return h.inner.SendInput(ctx, paneID, data)
}

func (h *instrumentedHost) Split(ctx context.Context, paneID string, vertical bool) (string, error) {
	h.metrics.RecordHostCall(ctx, "split")
	return h.inner.Split(ctx, paneID, vertical)
}

func (h *instrumentedHost) CurrentSessionID() (string, bool) {
	return h.inner.CurrentSessionID()
}
