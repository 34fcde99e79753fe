package picker

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used by the picker.
type Theme struct {
	Primary   lipgloss.Color // title
	Secondary lipgloss.Color // selected row
	Success   lipgloss.Color // current-pane marker
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Highlight lipgloss.Color // selected row background
}

// DarkTheme returns the default theme for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("12"),
		Secondary: lipgloss.Color("15"),
		Success:   lipgloss.Color("10"),
		Text:      lipgloss.Color("7"),
		TextMuted: lipgloss.Color("8"),
		Highlight: lipgloss.Color("8"),
	}
}

// LightTheme returns a theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("4"),
		Secondary: lipgloss.Color("0"),
		Success:   lipgloss.Color("2"),
		Text:      lipgloss.Color("0"),
		TextMuted: lipgloss.Color("8"),
		Highlight: lipgloss.Color("7"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds the lipgloss styles derived from a Theme.
type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	hintKey  lipgloss.Style
	hintDesc lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.Highlight),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		dim:      lipgloss.NewStyle().Foreground(t.TextMuted),
		hintKey:  lipgloss.NewStyle().Foreground(t.Text),
		hintDesc: lipgloss.NewStyle().Foreground(t.TextMuted),
	}
}
