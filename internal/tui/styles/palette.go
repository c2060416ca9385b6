package styles

import "github.com/charmbracelet/lipgloss"

// ThemeName names a built-in color theme.
type ThemeName string

const (
	ThemeDefault        ThemeName = "default"
	ThemeDracula        ThemeName = "dracula"
	ThemeNord           ThemeName = "nord"
	ThemeSolarizedLight ThemeName = "solarized-light"
)

// ColorPalette assigns a color to each role in the planner screen.
type ColorPalette struct {
	Primary   lipgloss.Color // focused tab and cursor row
	Secondary lipgloss.Color // bookings and the budget-ok badge
	Warning   lipgloss.Color // budget warning badge
	Error     lipgloss.Color // over-budget badge and error flashes
	Muted     lipgloss.Color // inactive tabs and hints
	Surface   lipgloss.Color // text drawn on colored tabs and badges
	Text      lipgloss.Color
	Border    lipgloss.Color // section box
}

type theme struct {
	name        ThemeName
	description string
	palette     ColorPalette
}

// themes is ordered as listed by `confplan config theme list`.
var themes = []theme{
	{
		name:        ThemeDefault,
		description: "violet accents, green bookings on a dark slate",
		palette: ColorPalette{
			Primary:   "#A78BFA",
			Secondary: "#10B981",
			Warning:   "#F59E0B",
			Error:     "#F87171",
			Muted:     "#9CA3AF",
			Surface:   "#1F2937",
			Text:      "#F9FAFB",
			Border:    "#6B7280",
		},
	},
	{
		name:        ThemeDracula,
		description: "Dracula purple and green",
		palette: ColorPalette{
			Primary:   "#BD93F9",
			Secondary: "#50FA7B",
			Warning:   "#F1FA8C",
			Error:     "#FF5555",
			Muted:     "#6272A4",
			Surface:   "#282A36",
			Text:      "#F8F8F2",
			Border:    "#44475A",
		},
	},
	{
		name:        ThemeNord,
		description: "Nord frost accents, aurora budget colors",
		palette: ColorPalette{
			Primary:   "#88C0D0",
			Secondary: "#A3BE8C",
			Warning:   "#EBCB8B",
			Error:     "#BF616A",
			Muted:     "#4C566A",
			Surface:   "#2E3440",
			Text:      "#ECEFF4",
			Border:    "#3B4252",
		},
	},
	{
		name:        ThemeSolarizedLight,
		description: "Solarized on a light background, for bright terminals",
		palette: ColorPalette{
			Primary:   "#268BD2",
			Secondary: "#859900",
			Warning:   "#B58900",
			Error:     "#DC322F",
			Muted:     "#93A1A1",
			Surface:   "#FDF6E3",
			Text:      "#657B83",
			Border:    "#EEE8D5",
		},
	},
}

func lookupTheme(name ThemeName) (theme, bool) {
	for _, t := range themes {
		if t.name == name {
			return t, true
		}
	}
	return themes[0], false
}

// BuiltinThemes returns the theme names in display order.
func BuiltinThemes() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t.name)
	}
	return names
}

// IsValidTheme reports whether name is a built-in theme. Names are case-sensitive.
func IsValidTheme(name string) bool {
	_, ok := lookupTheme(ThemeName(name))
	return ok
}

// Describe returns a one-line description of the theme, or "" when unknown.
func Describe(name ThemeName) string {
	t, ok := lookupTheme(name)
	if !ok {
		return ""
	}
	return t.description
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() *ColorPalette {
	p := themes[0].palette
	return &p
}

// GetPalette returns a copy of the named theme's palette, falling back to
// the default palette for unknown names.
func GetPalette(name ThemeName) *ColorPalette {
	t, _ := lookupTheme(name)
	p := t.palette
	return &p
}
