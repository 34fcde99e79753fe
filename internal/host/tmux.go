package host

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/timvw/pane-pilot/internal/layout"
)

// Tmux implements the Host interface for tmux.
//
// tmux's hierarchy maps onto ours as session→window, window→tab, pane→pane:
// a tmux session is the top-level container the user switches between, its
// windows are the tab row, and its panes are the split surfaces. The
// long-form pane identifier is tmux's pane id ("%n"), which is unique across
// the whole server and stable for the pane's lifetime.
type Tmux struct{}

// NewTmux creates a new tmux host.
func NewTmux() *Tmux {
	return &Tmux{}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// listFormat emits one tab-separated line per pane:
// session_id, window_id, pane_id, pane_title, pane_tty, cwd, command.
const listFormat = "#{session_id}\t#{window_id}\t#{pane_id}\t#{pane_title}\t#{pane_tty}\t#{pane_current_path}\t#{pane_current_command}"

// Snapshot builds the hierarchy from a single list-panes call.
func (t *Tmux) Snapshot(ctx context.Context) (*layout.Snapshot, error) {
	out, err := t.run(ctx, "list-panes", "-a", "-F", listFormat)
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w", err)
	}
	return parseListOutput(out), nil
}

// CaptureLines captures the visible content of a pane, one string per row.
func (t *Tmux) CaptureLines(ctx context.Context, paneID string) ([]string, error) {
	out, err := t.run(ctx, "capture-pane", "-t", paneID, "-p")
	if err != nil {
		return nil, fmt.Errorf("tmux capture-pane -t %s: %w", paneID, err)
	}
	// capture-pane terminates its output with a single newline.
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n"), nil
}

// SendInput delivers data as literal keystrokes. The -l flag disables key
// name lookup so the bytes arrive exactly as given, control bytes included.
func (t *Tmux) SendInput(ctx context.Context, paneID, data string) error {
	if _, err := t.run(ctx, "send-keys", "-t", paneID, "-l", "--", data); err != nil {
		return fmt.Errorf("tmux send-keys -t %s: %w", paneID, err)
	}
	return nil
}

// Split creates an adjacent pane and returns the new pane's id. A vertical
// divider (side-by-side panes) is tmux's -h split.
func (t *Tmux) Split(ctx context.Context, paneID string, vertical bool) (string, error) {
	direction := "-v"
	if vertical {
		direction = "-h"
	}
	out, err := t.run(ctx, "split-window", "-t", paneID, direction, "-P", "-F", "#{pane_id}")
	if err != nil {
		return "", fmt.Errorf("tmux split-window -t %s: %w", paneID, err)
	}
	return strings.TrimSpace(out), nil
}

// CurrentSessionID returns the pane id tmux exports into the environment of
// every pane it spawns.
func (t *Tmux) CurrentSessionID() (string, bool) {
	id := os.Getenv("TMUX_PANE")
	return id, id != ""
}

// run executes a tmux command and returns its stdout.
func (t *Tmux) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

// parseListOutput builds a Snapshot from list-panes output. list-panes -a
// emits panes grouped by session and window in display order, so grouping on
// the stable ids while assigning 1-based positions in encounter order
// preserves that order. Malformed lines are skipped.
func parseListOutput(out string) *layout.Snapshot {
	snap := &layout.Snapshot{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 7)
		if len(parts) != 7 {
			continue
		}
		windowID, tabID := parts[0], parts[1]

		if n := len(snap.Windows); n == 0 || snap.Windows[n-1].ID != windowID {
			snap.Windows = append(snap.Windows, layout.Window{Position: n + 1, ID: windowID})
		}
		w := &snap.Windows[len(snap.Windows)-1]

		if n := len(w.Tabs); n == 0 || w.Tabs[n-1].ID != tabID {
			w.Tabs = append(w.Tabs, layout.Tab{Position: n + 1, ID: tabID})
		}
		tab := &w.Tabs[len(w.Tabs)-1]

		tab.Panes = append(tab.Panes, layout.Pane{
			Position: len(tab.Panes) + 1,
			ID:       parts[2],
			Name:     parts[3],
			TTY:      parts[4],
			CWD:      parts[5],
			Job:      parts[6],
		})
	}
	return snap
}
