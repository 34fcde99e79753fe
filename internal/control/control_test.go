package control

import (
	"context"
	"errors"
	"testing"

	"github.com/timvw/pane-pilot/internal/host/hosttest"
	"github.com/timvw/pane-pilot/internal/result"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		symbol   string
		wantByte byte
	}{
		{"c", 0x03},
		{"d", 0x04},
		{"z", 0x1A},
		{"l", 0x0C},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			s, err := Lookup(tt.symbol)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.symbol, err)
			}
			if s.Byte != tt.wantByte {
				t.Errorf("byte: got %#x, want %#x", s.Byte, tt.wantByte)
			}
			if s.Description == "" {
				t.Error("description must not be empty")
			}
		})
	}
}

func TestLookupInvalid(t *testing.T) {
	for _, symbol := range []string{"x", "", "cc", "C"} {
		_, err := Lookup(symbol)
		if err == nil {
			t.Errorf("Lookup(%q) succeeded, want INVALID_CONTROL", symbol)
			continue
		}
		if result.KindOf(err) != result.KindInvalidControl {
			t.Errorf("Lookup(%q) kind: got %q, want INVALID_CONTROL", symbol, result.KindOf(err))
		}
	}
}

func TestSendText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		newline  bool
		wantData string
	}{
		{"with newline", "ls -la", true, "ls -la\n"},
		{"without newline", "# typed only", false, "# typed only"},
		{"empty with newline", "", true, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &hosttest.Host{}
			if err := SendText(context.Background(), h, "%1", tt.text, tt.newline); err != nil {
				t.Fatalf("SendText error: %v", err)
			}
			if len(h.Sent) != 1 {
				t.Fatalf("sent %d inputs, want 1", len(h.Sent))
			}
			if h.Sent[0].PaneID != "%1" || h.Sent[0].Data != tt.wantData {
				t.Errorf("sent %+v, want pane %%1 data %q", h.Sent[0], tt.wantData)
			}
		})
	}
}

func TestSendTextHostFailure(t *testing.T) {
	h := &hosttest.Host{SendErr: errors.New("pane is gone")}
	err := SendText(context.Background(), h, "%1", "hi", true)
	if err == nil {
		t.Fatal("expected error")
	}
	if result.KindOf(err) != result.KindSendFailed {
		t.Errorf("kind: got %q, want SEND_FAILED", result.KindOf(err))
	}
}

func TestSendControl(t *testing.T) {
	h := &hosttest.Host{}
	s, err := SendControl(context.Background(), h, "%2", "c")
	if err != nil {
		t.Fatalf("SendControl error: %v", err)
	}
	if s.Description == "" {
		t.Error("description must be populated for reporting")
	}
	if len(h.Sent) != 1 || h.Sent[0].Data != "\x03" {
		t.Errorf("sent %+v, want single 0x03 byte", h.Sent)
	}
}

func TestSendControlInvalidSymbolNoIO(t *testing.T) {
	h := &hosttest.Host{}
	_, err := SendControl(context.Background(), h, "%2", "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if result.KindOf(err) != result.KindInvalidControl {
		t.Errorf("kind: got %q, want INVALID_CONTROL", result.KindOf(err))
	}
	// The symbol is rejected before any transport call.
	if len(h.Sent) != 0 {
		t.Errorf("host I/O happened for an invalid symbol: %+v", h.Sent)
	}
}
