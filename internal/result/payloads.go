package result

// Location is a 1-based (window, tab, pane) coordinate triple.
type Location struct {
	Window int `json:"window"`
	Tab    int `json:"tab"`
	Pane   int `json:"pane"`
}

// SessionEntry is one pane in the list payload.
type SessionEntry struct {
	Position  int    `json:"position"`
	ID        string `json:"id"`
	Shorthand string `json:"shorthand"`
	Name      string `json:"name"`
	TTY       string `json:"tty"`
	CWD       string `json:"cwd"`
	Job       string `json:"job"`
	IsCurrent bool   `json:"is_current"`
}

// TabEntry is one tab in the list payload.
type TabEntry struct {
	Position int            `json:"position"`
	ID       string         `json:"id"`
	Sessions []SessionEntry `json:"sessions"`
}

// WindowEntry is one window in the list payload.
type WindowEntry struct {
	Position int        `json:"position"`
	ID       string     `json:"id"`
	Tabs     []TabEntry `json:"tabs"`
}

// List is the payload of the list command.
type List struct {
	Windows          []WindowEntry `json:"windows"`
	CurrentSessionID string        `json:"current_session_id"`
	CurrentShorthand string        `json:"current_shorthand"`
}

// Current is the payload of the current command.
type Current struct {
	SessionID string   `json:"session_id"`
	Shorthand string   `json:"shorthand"`
	Name      string   `json:"name"`
	TTY       string   `json:"tty"`
	CWD       string   `json:"cwd"`
	Job       string   `json:"job"`
	Location  Location `json:"location"`
}

// SidePane is the payload of the side-pane command.
type SidePane struct {
	SessionID        string   `json:"session_id"`
	Shorthand        string   `json:"shorthand"`
	Name             string   `json:"name"`
	CWD              string   `json:"cwd"`
	Job              string   `json:"job"`
	Position         string   `json:"position"` // "left" or "right"
	CurrentShorthand string   `json:"current_shorthand"`
	Location         Location `json:"location"`
}

// Read is the payload of the read command.
type Read struct {
	SessionID string `json:"session_id"`
	Shorthand string `json:"shorthand"`
	Name      string `json:"name"`
	CWD       string `json:"cwd"`
	Contents  string `json:"contents"`
}

// SendText is the payload of the send-text command.
type SendText struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Shorthand string `json:"shorthand"`
	TextSent  string `json:"text_sent"`
	Newline   bool   `json:"newline"`
}

// SendControl is the payload of the send-control command.
type SendControl struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"session_id"`
	Shorthand   string `json:"shorthand"`
	Control     string `json:"control"`
	Description string `json:"description"`
}

// Split is the payload of the split command. The new pane's coordinates are
// deliberately absent: computing them would require a fresh snapshot taken
// after the layout mutation.
type Split struct {
	Success           bool   `json:"success"`
	OriginalSessionID string `json:"original_session_id"`
	OriginalShorthand string `json:"original_shorthand"`
	NewSessionID      string `json:"new_session_id"`
	SplitDirection    string `json:"split_direction"` // "vertical" or "horizontal"
}

// Status is the payload of the status command.
type Status struct {
	Multiplexer      string `json:"multiplexer"`
	BinaryFound      bool   `json:"binary_found"`
	ServerRunning    bool   `json:"server_running"`
	InSession        bool   `json:"in_session"`
	CurrentSessionID string `json:"current_session_id"`
	Ready            bool   `json:"ready"`
}

// Pick is the payload of the pick command.
type Pick struct {
	SessionID string `json:"session_id"`
	Shorthand string `json:"shorthand"`
}
