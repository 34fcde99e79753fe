// Package layout defines the immutable window→tab→pane hierarchy that every
// command works against. A Snapshot is obtained once per invocation from the
// host and never mutated; positions are 1-based and snapshot-relative, so an
// address derived from one snapshot may point elsewhere after panes are
// created, closed, or reordered.
package layout

// Pane is a single terminal surface running one job.
type Pane struct {
	// Position is the 1-based position within the owning tab.
	Position int
	// ID is the long-form identifier, globally unique and stable for the
	// lifetime of the pane.
	ID string
	// Display attributes owned by the host.
	Name string
	TTY  string
	CWD  string
	Job  string
}

// Tab is an ordered group of panes within a window.
type Tab struct {
	Position int
	ID       string
	Panes    []Pane
}

// Window is an ordered group of tabs, the top-level container.
type Window struct {
	Position int
	ID       string
	Tabs     []Tab
}

// Snapshot is a point-in-time view of the whole hierarchy.
type Snapshot struct {
	Windows []Window
}

// Coord is a fully qualified 1-based (window, tab, pane) position.
type Coord struct {
	Window int
	Tab    int
	Pane   int
}

// Resolved is the result of locating a pane: the pane itself, its canonical
// shorthand, and the coordinates it was found at.
type Resolved struct {
	Pane      Pane
	Shorthand string
	Coord     Coord
}
