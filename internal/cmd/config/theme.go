package config

import (
	"fmt"
	"strings"

	appconfig "github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and inspect color themes",
	Long: `List and inspect the color themes of the planner TUI.

Select a theme with 'confplan config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show the colors of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeInfoCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	active := activeTheme()

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-16s %s\n", marker, name, styles.Describe(styles.ThemeName(name)))
	}
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	out := cmd.OutOrStdout()

	if !styles.IsValidTheme(themeName) {
		return fmt.Errorf("unknown theme: %s\nValid options: %s",
			themeName, strings.Join(styles.BuiltinThemes(), ", "))
	}

	palette := styles.GetPalette(styles.ThemeName(themeName))
	fmt.Fprintf(out, "Theme: %s\n", themeName)
	fmt.Fprintf(out, "%s\n", styles.Describe(styles.ThemeName(themeName)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", palette.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", palette.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", palette.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", palette.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", palette.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:    %s\n", palette.Border)

	return nil
}

// activeTheme returns the configured theme, or the default one when the
// configured name is unknown.
func activeTheme() string {
	cfg, err := appconfig.Load()
	if err != nil || !styles.IsValidTheme(cfg.TUI.Theme) {
		return string(styles.ThemeDefault)
	}
	return cfg.TUI.Theme
}
