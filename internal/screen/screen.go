// Package screen normalizes captured pane buffers.
package screen

import (
	"context"
	"strings"

	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/result"
)

// Normalize cleans raw buffer lines into a multi-line string. Hosts pad line
// buffers to a fixed width with NUL characters; those are stripped along
// with trailing whitespace on each line. Only the contiguous trailing run of
// blank lines is dropped — interior blanks are content. An all-blank buffer
// normalizes to the empty string.
func Normalize(lines []string) string {
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\x00", "")
		cleaned[i] = strings.TrimRight(line, " \t\r")
	}

	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return strings.Join(cleaned, "\n")
}

// Capture reads and normalizes the visible buffer of a pane.
func Capture(ctx context.Context, h host.Host, paneID string) (string, error) {
	lines, err := h.CaptureLines(ctx, paneID)
	if err != nil {
		return "", result.Errorf(result.KindReadFailed, "failed to read session contents: %v", err)
	}
	return Normalize(lines), nil
}
