package screen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/timvw/pane-pilot/internal/host/hosttest"
	"github.com/timvw/pane-pilot/internal/result"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "plain lines pass through",
			lines: []string{"hello", "world"},
			want:  "hello\nworld",
		},
		{
			name:  "trailing blank run is dropped",
			lines: []string{"hello", "world", "", "", ""},
			want:  "hello\nworld",
		},
		{
			name:  "interior blanks survive",
			lines: []string{"a", "", "b", "", "", ""},
			want:  "a\n\nb",
		},
		{
			name:  "NUL padding after visible text is stripped",
			lines: []string{"prompt$\x00\x00\x00\x00", "out\x00put"},
			want:  "prompt$\noutput",
		},
		{
			name:  "trailing whitespace is trimmed per line",
			lines: []string{"a   ", "b\t\t", "c \x00 "},
			want:  "a\nb\nc",
		},
		{
			name:  "line of only padding counts as blank",
			lines: []string{"x", "\x00\x00  ", ""},
			want:  "x",
		},
		{
			name:  "all-blank buffer is empty",
			lines: []string{"", "   ", "\x00\x00"},
			want:  "",
		},
		{
			name:  "no lines",
			lines: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.lines); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	lines := []string{"a", "", "b \x00", "", "", ""}
	once := Normalize(lines)
	twice := Normalize(strings.Split(once, "\n"))
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestCapture(t *testing.T) {
	h := &hosttest.Host{
		Lines: map[string][]string{
			"%1": {"hello", "world", "", "", ""},
		},
	}

	got, err := Capture(context.Background(), h, "%1")
	if err != nil {
		t.Fatalf("Capture error: %v", err)
	}
	if got != "hello\nworld" {
		t.Errorf("Capture = %q, want %q", got, "hello\nworld")
	}
}

func TestCaptureReadFailure(t *testing.T) {
	h := &hosttest.Host{CaptureErr: errors.New("pane is gone")}

	_, err := Capture(context.Background(), h, "%1")
	if err == nil {
		t.Fatal("expected error")
	}
	if result.KindOf(err) != result.KindReadFailed {
		t.Errorf("kind: got %q, want READ_FAILED", result.KindOf(err))
	}
}
