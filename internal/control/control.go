// Package control delivers text and control bytes to panes.
package control

import (
	"context"

	"github.com/timvw/pane-pilot/internal/host"
	"github.com/timvw/pane-pilot/internal/result"
)

// Symbol is one entry of the fixed control table. Description is reporting
// metadata only; dispatch uses Byte alone.
type Symbol struct {
	Byte        byte
	Description string
}

// symbols is the closed set of accepted control symbols.
var symbols = map[string]Symbol{
	"c": {0x03, "interrupt (Ctrl+C)"},
	"d": {0x04, "end of input (Ctrl+D)"},
	"z": {0x1A, "suspend (Ctrl+Z)"},
	"l": {0x0C, "clear screen (Ctrl+L)"},
}

// Lookup validates a control symbol. It is called before any host I/O so an
// unknown symbol never causes a partial side effect.
func Lookup(symbol string) (Symbol, error) {
	s, ok := symbols[symbol]
	if !ok {
		return Symbol{}, result.Errorf(result.KindInvalidControl,
			"invalid control character %q (valid: c, d, z, l)", symbol)
	}
	return s, nil
}

// SendText delivers text verbatim as pane input, appending a single newline
// first when newline is true. The newline makes the difference between
// "typed and executed" and merely "typed".
func SendText(ctx context.Context, h host.Host, paneID, text string, newline bool) error {
	data := text
	if newline {
		data += "\n"
	}
	if err := h.SendInput(ctx, paneID, data); err != nil {
		return result.Errorf(result.KindSendFailed, "failed to send text: %v", err)
	}
	return nil
}

// SendControl translates symbol through the control table and delivers the
// single byte over the same transport as SendText.
func SendControl(ctx context.Context, h host.Host, paneID, symbol string) (Symbol, error) {
	s, err := Lookup(symbol)
	if err != nil {
		return Symbol{}, err
	}
	if err := h.SendInput(ctx, paneID, string(s.Byte)); err != nil {
		return Symbol{}, result.Errorf(result.KindSendFailed, "failed to send control character: %v", err)
	}
	return s, nil
}
