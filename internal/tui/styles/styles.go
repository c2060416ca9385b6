// Package styles holds the lipgloss styles of the planner TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors of the active theme
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Title is the application header
	Title lipgloss.Style

	// Section tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Item rows
	ItemRow      lipgloss.Style
	ItemCursor   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDisabled lipgloss.Style
	Quantity     lipgloss.Style

	// Section box and details panel
	ContentBox   lipgloss.Style
	DetailsBox   lipgloss.Style
	TableHeader  lipgloss.Style
	TableCell    lipgloss.Style
	TotalLine    lipgloss.Style
	GrandTotal   lipgloss.Style
	PeopleEditor lipgloss.Style

	// Budget badges
	BudgetOK      lipgloss.Style
	BudgetWarning lipgloss.Style
	BudgetOver    lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
)

func init() {
	Apply(DefaultPalette())
}

// SetActiveTheme rebuilds every style from the named theme's palette.
//
// Not thread-safe: call it before the program starts or from the
// Bubble Tea event loop.
func SetActiveTheme(name ThemeName) {
	Apply(GetPalette(name))
}

// Apply rebuilds every style from p.
func Apply(p *ColorPalette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Background(PrimaryColor).
		Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	ItemRow = lipgloss.NewStyle().
		Foreground(TextColor).
		PaddingLeft(2)

	ItemCursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	ItemSelected = lipgloss.NewStyle().
		Foreground(SecondaryColor)

	ItemDisabled = lipgloss.NewStyle().
		Foreground(MutedColor).
		Strikethrough(true)

	Quantity = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Width(4).
		Align(lipgloss.Center)

	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	DetailsBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)

	TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		Underline(true)

	TableCell = lipgloss.NewStyle().
		Foreground(TextColor)

	TotalLine = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	GrandTotal = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	PeopleEditor = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(WarningColor).
		Padding(0, 1)

	BudgetOK = lipgloss.NewStyle().
		Foreground(SurfaceColor).
		Background(SecondaryColor).
		Padding(0, 1)

	BudgetWarning = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Background(WarningColor).
		Padding(0, 1)

	BudgetOver = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(ErrorColor).
		Padding(0, 1)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)

	SuccessMsg = lipgloss.NewStyle().
		Foreground(SecondaryColor)
}
