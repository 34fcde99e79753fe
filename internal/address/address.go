// Package address implements the compact pane-address grammar.
//
// A shorthand is "[wN]tMpP" (case-insensitive): 1-based window, tab and pane
// positions with no separators, e.g. "t4p2" or "w2t1p3". The window segment
// is optional on input and defaults to 1; canonical output always carries it.
package address

import (
	"fmt"
	"regexp"
	"strconv"
)

// Address is a fully qualified 1-based (window, tab, pane) triple.
type Address struct {
	Window int
	Tab    int
	Pane   int
}

var shorthandRe = regexp.MustCompile(`^(?i)(?:w([1-9][0-9]*))?t([1-9][0-9]*)p([1-9][0-9]*)$`)

// Parse parses a shorthand token. The boolean reports whether the token
// matched the grammar at all; a non-match is not an error — it tells the
// caller to fall back to long-form identifier lookup.
func Parse(token string) (Address, bool) {
	m := shorthandRe.FindStringSubmatch(token)
	if m == nil {
		return Address{}, false
	}
	window := 1
	if m[1] != "" {
		window, _ = strconv.Atoi(m[1])
	}
	tab, _ := strconv.Atoi(m[2])
	pane, _ := strconv.Atoi(m[3])
	return Address{Window: window, Tab: tab, Pane: pane}, true
}

// Format returns the canonical shorthand for the given 1-based coordinates.
func Format(window, tab, pane int) string {
	return fmt.Sprintf("w%dt%dp%d", window, tab, pane)
}
