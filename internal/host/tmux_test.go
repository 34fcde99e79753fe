package host

import (
	"testing"
)

func TestParseListOutput(t *testing.T) {
	// Two sessions; the first has two windows, the second window holding
	// two panes. Field order: session_id, window_id, pane_id, title, tty,
	// cwd, command.
	out := "$0\t@0\t%0\tmain\t/dev/ttys001\t/home/tim\tzsh\n" +
		"$0\t@1\t%1\tbuild\t/dev/ttys002\t/home/tim/proj\tvim\n" +
		"$0\t@1\t%4\tlogs\t/dev/ttys003\t/home/tim/proj\ttail\n" +
		"$1\t@2\t%2\tscratch\t/dev/ttys004\t/tmp\tbash\n"

	snap := parseListOutput(out)

	if len(snap.Windows) != 2 {
		t.Fatalf("windows: got %d, want 2", len(snap.Windows))
	}

	w1 := snap.Windows[0]
	if w1.Position != 1 || w1.ID != "$0" {
		t.Errorf("window 1: got position %d id %q", w1.Position, w1.ID)
	}
	if len(w1.Tabs) != 2 {
		t.Fatalf("window 1 tabs: got %d, want 2", len(w1.Tabs))
	}
	if w1.Tabs[1].Position != 2 || w1.Tabs[1].ID != "@1" {
		t.Errorf("tab 2: got position %d id %q", w1.Tabs[1].Position, w1.Tabs[1].ID)
	}
	if len(w1.Tabs[1].Panes) != 2 {
		t.Fatalf("tab 2 panes: got %d, want 2", len(w1.Tabs[1].Panes))
	}

	p := w1.Tabs[1].Panes[1]
	if p.Position != 2 || p.ID != "%4" {
		t.Errorf("pane: got position %d id %q", p.Position, p.ID)
	}
	if p.Name != "logs" || p.TTY != "/dev/ttys003" || p.CWD != "/home/tim/proj" || p.Job != "tail" {
		t.Errorf("pane attributes: got %+v", p)
	}

	w2 := snap.Windows[1]
	if w2.Position != 2 || w2.ID != "$1" {
		t.Errorf("window 2: got position %d id %q", w2.Position, w2.ID)
	}
	if len(w2.Tabs) != 1 || len(w2.Tabs[0].Panes) != 1 {
		t.Errorf("window 2 shape: got %d tabs", len(w2.Tabs))
	}
}

func TestParseListOutputSkipsMalformedLines(t *testing.T) {
	out := "garbage\n" +
		"$0\t@0\t%0\tmain\t/dev/ttys001\t/home\tzsh\n" +
		"$0\t@0\n"

	snap := parseListOutput(out)
	if len(snap.Windows) != 1 {
		t.Fatalf("windows: got %d, want 1", len(snap.Windows))
	}
	if got := len(snap.Windows[0].Tabs[0].Panes); got != 1 {
		t.Errorf("panes: got %d, want 1", got)
	}
}

func TestParseListOutputEmpty(t *testing.T) {
	snap := parseListOutput("")
	if len(snap.Windows) != 0 {
		t.Errorf("windows: got %d, want 0", len(snap.Windows))
	}
}

func TestCurrentSessionID(t *testing.T) {
	tm := NewTmux()

	t.Setenv("TMUX_PANE", "%7")
	id, ok := tm.CurrentSessionID()
	if !ok || id != "%7" {
		t.Errorf("got (%q, %v), want (%%7, true)", id, ok)
	}

	t.Setenv("TMUX_PANE", "")
	if _, ok := tm.CurrentSessionID(); ok {
		t.Error("expected no ambient identifier with TMUX_PANE unset")
	}
}

func TestFromName(t *testing.T) {
	if _, err := FromName("tmux"); err != nil {
		t.Errorf("tmux: unexpected error %v", err)
	}
	if _, err := FromName("iterm2"); err == nil {
		t.Error("iterm2: expected not-implemented error")
	}
	if _, err := FromName("screen"); err == nil {
		t.Error("screen: expected unknown multiplexer error")
	}
}
