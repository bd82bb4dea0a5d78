package tui

import "github.com/charmbracelet/lipgloss"

// Palette names the colors of the editor panels as lipgloss color strings:
// an ANSI index such as "3" or a hex value such as "#ff8800".
type Palette struct {
	Pending     string `toml:"pending" yaml:"pending"`
	Valid       string `toml:"valid" yaml:"valid"`
	Invalid     string `toml:"invalid" yaml:"invalid"`
	StandBy     string `toml:"standby" yaml:"standby"`
	Suggestions string `toml:"suggestions" yaml:"suggestions"`
	Background  string `toml:"background" yaml:"background"`
}

func DefaultPalette() Palette {
	return Palette{
		Pending:     "3",
		Valid:       "2",
		Invalid:     "1",
		StandBy:     "7",
		Suggestions: "3",
		Background:  "0",
	}
}

// Styles controls the panel rendering.
type Styles struct {
	Border lipgloss.Border

	Pending     lipgloss.Style
	Valid       lipgloss.Style
	Invalid     lipgloss.Style
	StandBy     lipgloss.Style
	Suggestions lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns styles for DefaultPalette on the default renderer.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer(), DefaultPalette())
}

// NewStyles builds Styles for p on r.
func NewStyles(r *lipgloss.Renderer, p Palette) Styles {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Border:      lipgloss.NormalBorder(),
		Pending:     fg(p.Pending),
		Valid:       fg(p.Valid),
		Invalid:     fg(p.Invalid),
		StandBy:     fg(p.StandBy),
		Suggestions: fg(p.Suggestions),
		Text:        r.NewStyle().Background(lipgloss.Color(p.Background)),
		Cursor:      r.NewStyle().Reverse(true),
		Help:        r.NewStyle().Faint(true),
	}
}
