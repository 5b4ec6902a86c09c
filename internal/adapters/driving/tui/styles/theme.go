// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// namedColours maps calendar colour names to terminal colours.
var namedColours = map[string]lipgloss.Color{
	"grey":   lipgloss.Color("#6C7086"),
	"gray":   lipgloss.Color("#6C7086"),
	"red":    lipgloss.Color("#F38BA8"),
	"orange": lipgloss.Color("#FAB387"),
	"yellow": lipgloss.Color("#F9E2AF"),
	"green":  lipgloss.Color("#A6E3A1"),
	"teal":   lipgloss.Color("#94E2D5"),
	"blue":   lipgloss.Color("#89B4FA"),
	"purple": lipgloss.Color("#7C3AED"),
	"pink":   lipgloss.Color("#F5C2E7"),
}

// CalendarColour resolves a calendar colour ("blue", "#89B4FA", "33") to a
// terminal colour. Unknown names fall back to grey.
func CalendarColour(name string) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColours[name]; ok {
		return c
	}
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) {
		return lipgloss.Color(name)
	}
	if name != "" && strings.Trim(name, "0123456789") == "" && len(name) <= 3 {
		return lipgloss.Color(name)
	}
	return namedColours["grey"]
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Section style for department headers in grouped mode.
	Section lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Swatch renders a coloured block for a calendar colour.
func (s *Styles) Swatch(colour string) string {
	return lipgloss.NewStyle().Foreground(CalendarColour(colour)).Render("●")
}

// Calendar returns a bold style in a calendar colour.
func (s *Styles) Calendar(colour string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CalendarColour(colour))
}
