// Package hosttest provides a scripted in-memory Host for unit tests.
package hosttest

import (
	"context"
	"fmt"

	"github.com/timvw/pane-pilot/internal/layout"
)

// Input records one SendInput call.
type Input struct {
	PaneID string
	Data   string
}

// SplitCall records one Split call.
type SplitCall struct {
	PaneID   string
	Vertical bool
}

// Host is a fake multiplexer backend. Zero value is usable; populate the
// fields a test needs and inspect the recorded calls afterwards.
type Host struct {
	Snap    *layout.Snapshot
	SnapErr error

	// Lines maps pane id to its raw visible buffer.
	Lines      map[string][]string
	CaptureErr error

	SendErr error
	Sent    []Input

	SplitID  string
	SplitErr error
	Splits   []SplitCall

	// Current is the ambient pane identifier; empty means "not in a pane".
	Current string
}

func (h *Host) Name() string { return "faketmux" }

func (h *Host) Snapshot(ctx context.Context) (*layout.Snapshot, error) {
	if h.SnapErr != nil {
		return nil, h.SnapErr
	}
	if h.Snap == nil {
		return &layout.Snapshot{}, nil
	}
	return h.Snap, nil
}

func (h *Host) CaptureLines(ctx context.Context, paneID string) ([]string, error) {
	if h.CaptureErr != nil {
		return nil, h.CaptureErr
	}
	lines, ok := h.Lines[paneID]
	if !ok {
		return nil, fmt.Errorf("no such pane: %s", paneID)
	}
	return lines, nil
}

func (h *Host) SendInput(ctx context.Context, paneID, data string) error {
	if h.SendErr != nil {
		return h.SendErr
	}
	h.Sent = append(h.Sent, Input{PaneID: paneID, Data: data})
	return nil
}

func (h *Host) Split(ctx context.Context, paneID string, vertical bool) (string, error) {
	if h.SplitErr != nil {
		return "", h.SplitErr
	}
	h.Splits = append(h.Splits, SplitCall{PaneID: paneID, Vertical: vertical})
	return h.SplitID, nil
}

func (h *Host) CurrentSessionID() (string, bool) {
	return h.Current, h.Current != ""
}
