package host

import (
	"fmt"
	"os"
	"os/exec"
)

// Detect auto-detects the active terminal multiplexer. It checks environment
// variables first, then falls back to probing for a running tmux server.
func Detect() (Host, error) {
	if os.Getenv("TMUX") != "" {
		return NewTmux(), nil
	}

	if found, running := ProbeTmux(); found && running {
		return NewTmux(), nil
	}

	return nil, fmt.Errorf("no supported terminal multiplexer detected (set $TMUX or start a tmux server)")
}

// FromName creates a Host by name.
func FromName(name string) (Host, error) {
	switch name {
	case "tmux":
		return NewTmux(), nil
	case "iterm2":
		return nil, fmt.Errorf("iterm2 support is not yet implemented")
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: tmux)", name)
	}
}

// ProbeTmux reports whether the tmux binary is on PATH and whether a server
// answers. Used by detection and by the status command.
func ProbeTmux() (found, running bool) {
	path, err := exec.LookPath("tmux")
	if err != nil || path == "" {
		return false, false
	}
	return true, exec.Command("tmux", "list-sessions").Run() == nil
}
