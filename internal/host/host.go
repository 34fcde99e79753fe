// Package host abstracts the terminal multiplexer the commands drive.
//
// A Host is pure transport: it reports the window→tab→pane hierarchy and
// moves bytes in and out of panes, without interpreting any of it. All host
// calls block until the multiplexer answers; each command performs at most
// one snapshot followed by one act step, so no locking is needed.
package host

import (
	"context"

	"github.com/timvw/pane-pilot/internal/layout"
)

// Host is the interface to a terminal multiplexer backend.
type Host interface {
	// Name returns the multiplexer name (e.g. "tmux").
	Name() string

	// Snapshot returns the current window→tab→pane hierarchy. The result
	// is a point-in-time view; it is never refreshed within a command.
	Snapshot(ctx context.Context) (*layout.Snapshot, error)

	// CaptureLines returns the visible buffer of a pane as raw lines,
	// unnormalized. Callers are expected to pass the result through
	// screen.Normalize.
	CaptureLines(ctx context.Context, paneID string) ([]string, error)

	// SendInput delivers data verbatim as pane input. Text and control
	// bytes travel the same path.
	SendInput(ctx context.Context, paneID, data string) error

	// Split creates a pane adjacent to paneID and returns the new pane's
	// long-form identifier. vertical selects a vertical divider (the two
	// panes end up side by side).
	Split(ctx context.Context, paneID string, vertical bool) (string, error)

	// CurrentSessionID returns the ambient identifier of the pane this
	// process itself runs in, if the environment carries one.
	CurrentSessionID() (string, bool)
}
