// Package locate resolves user-supplied pane tokens against a layout
// snapshot and picks tab-level neighbors.
package locate

import (
	"github.com/timvw/pane-pilot/internal/address"
	"github.com/timvw/pane-pilot/internal/layout"
	"github.com/timvw/pane-pilot/internal/result"
)

// Locate resolves a token — shorthand or long-form identifier — to a pane.
// The canonical shorthand on the result is always computed from the
// coordinates actually used, regardless of which form the token was.
func Locate(snap *layout.Snapshot, token string) (layout.Resolved, error) {
	if addr, ok := address.Parse(token); ok {
		return byAddress(snap, addr)
	}
	return byID(snap, token)
}

// byAddress validates the address level by level — window, then tab, then
// pane — so a failure names exactly where the address diverges from the
// snapshot and how many entries that level actually has.
func byAddress(snap *layout.Snapshot, addr address.Address) (layout.Resolved, error) {
	if addr.Window > len(snap.Windows) {
		return layout.Resolved{}, result.Errorf(result.KindSessionNotFound,
			"window %d not found (have %d windows)", addr.Window, len(snap.Windows))
	}
	window := snap.Windows[addr.Window-1]

	if addr.Tab > len(window.Tabs) {
		return layout.Resolved{}, result.Errorf(result.KindSessionNotFound,
			"tab %d not found in window %d (have %d tabs)", addr.Tab, addr.Window, len(window.Tabs))
	}
	tab := window.Tabs[addr.Tab-1]

	if addr.Pane > len(tab.Panes) {
		return layout.Resolved{}, result.Errorf(result.KindSessionNotFound,
			"pane %d not found in window %d tab %d (have %d panes)", addr.Pane, addr.Window, addr.Tab, len(tab.Panes))
	}

	return resolved(tab.Panes[addr.Pane-1], addr.Window, addr.Tab, addr.Pane), nil
}

// byID scans the snapshot in window→tab→pane order for a long-form
// identifier. Identifiers are unique, so the first match is the only one.
func byID(snap *layout.Snapshot, id string) (layout.Resolved, error) {
	for _, window := range snap.Windows {
		for _, tab := range window.Tabs {
			for _, pane := range tab.Panes {
				if pane.ID == id {
					return resolved(pane, window.Position, tab.Position, pane.Position), nil
				}
			}
		}
	}
	return layout.Resolved{}, result.Errorf(result.KindSessionNotFound, "session %q not found", id)
}

// SideNeighbor picks the pane adjacent to the pane identified by currentID
// within its own tab. The next-higher position is preferred; the last pane
// of a tab falls back to the next-lower one. There is no wraparound and no
// search across tabs or windows. The returned tag is "right" or "left"
// relative to the current pane.
func SideNeighbor(snap *layout.Snapshot, currentID string) (neighbor, current layout.Resolved, position string, err error) {
	current, err = byID(snap, currentID)
	if err != nil {
		return layout.Resolved{}, layout.Resolved{}, "", err
	}

	tab := snap.Windows[current.Coord.Window-1].Tabs[current.Coord.Tab-1]
	if len(tab.Panes) == 1 {
		return layout.Resolved{}, layout.Resolved{}, "", result.Errorf(result.KindNoSidePane,
			"no side pane: tab %d in window %d has only one pane", current.Coord.Tab, current.Coord.Window)
	}

	if current.Coord.Pane < len(tab.Panes) {
		pos := current.Coord.Pane + 1
		return resolved(tab.Panes[pos-1], current.Coord.Window, current.Coord.Tab, pos), current, "right", nil
	}
	pos := current.Coord.Pane - 1
	return resolved(tab.Panes[pos-1], current.Coord.Window, current.Coord.Tab, pos), current, "left", nil
}

func resolved(pane layout.Pane, window, tab, pos int) layout.Resolved {
	return layout.Resolved{
		Pane:      pane,
		Shorthand: address.Format(window, tab, pos),
		Coord:     layout.Coord{Window: window, Tab: tab, Pane: pos},
	}
}
