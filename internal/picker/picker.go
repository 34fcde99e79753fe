// Package picker implements the interactive pane picker for the pick
// command: a filterable list of every pane in the snapshot, returning the
// chosen pane's identifier and canonical shorthand.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/timvw/pane-pilot/internal/address"
	"github.com/timvw/pane-pilot/internal/layout"
)

// Item is one selectable row.
type Item struct {
	SessionID string
	Shorthand string
	Name      string
	Job       string
	CWD       string
	IsCurrent bool
}

// Flatten turns a snapshot into picker rows in window→tab→pane order.
func Flatten(snap *layout.Snapshot, currentID string) []Item {
	var items []Item
	for _, w := range snap.Windows {
		for _, tab := range w.Tabs {
			for _, pane := range tab.Panes {
				items = append(items, Item{
					SessionID: pane.ID,
					Shorthand: address.Format(w.Position, tab.Position, pane.Position),
					Name:      pane.Name,
					Job:       pane.Job,
					CWD:       pane.CWD,
					IsCurrent: currentID != "" && pane.ID == currentID,
				})
			}
		}
	}
	return items
}

// Model is the bubbletea model for the picker.
type Model struct {
	items    []Item
	visible  []int // indices into items matching the filter
	cursor   int
	filter   textinput.Model
	styles   styles
	choice   *Item
	quitting bool
}

// NewModel builds a picker over the given items.
func NewModel(items []Item, theme Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Focus()

	m := Model{
		items:  items,
		filter: ti,
		styles: newStyles(theme),
	}
	m.applyFilter()
	return m
}

// Choice returns the selected item, or nil if the picker was cancelled.
func (m Model) Choice() *Item {
	return m.choice
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.visible) > 0 {
				item := m.items[m.visible[m.cursor]]
				m.choice = &item
			}
			m.quitting = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible rows and clamps the cursor.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, item := range m.items {
		if query == "" || matches(item, query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func matches(item Item, query string) bool {
	for _, field := range []string{item.Shorthand, item.SessionID, item.Name, item.Job, item.CWD} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("pane-pilot — pick a pane"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.dim.Render("no panes match"))
		b.WriteString("\n")
	}

	for row, idx := range m.visible {
		item := m.items[idx]
		marker := " "
		if item.IsCurrent {
			marker = "*"
		}
		line := fmt.Sprintf("%s %-10s %-18s %s", marker, item.Shorthand, truncate(item.Job, 18), item.Name)
		if row == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.hintKey.Render("↑/↓") + m.styles.hintDesc.Render(" move  "))
	b.WriteString(m.styles.hintKey.Render("enter") + m.styles.hintDesc.Render(" select  "))
	b.WriteString(m.styles.hintKey.Render("esc") + m.styles.hintDesc.Render(" cancel"))
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run launches the picker over the given snapshot and returns the chosen
// pane, or ok=false if the user cancelled.
func Run(snap *layout.Snapshot, currentID, theme string) (Item, bool, error) {
	m := NewModel(Flatten(snap, currentID), ThemeByName(theme))
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return Item{}, false, fmt.Errorf("picker: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || fm.Choice() == nil {
		return Item{}, false, nil
	}
	return *fm.Choice(), true, nil
}
