// Package config provides CLI commands for managing confplan configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	appconfig "github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify confplan configuration",
	Long: `View or modify confplan configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  confplan config set budget.limit 25000
  confplan config set plan.meal_pricing locked
  confplan config set tui.theme nord

Valid keys:
  tui.theme                 - Color theme: default, dracula, nord, solarized-light
  tui.show_details          - Open the cost breakdown on start (true/false)
  tui.currency              - Currency symbol printed before amounts
  tui.locale                - BCP 47 locale for digit grouping (e.g. en-US, de-DE)
  plan.number_of_people     - Attendee count a new plan starts with
  plan.meal_pricing         - Meal pricing: live, locked
  catalog.path              - YAML catalog file (empty = built-in prices)
  catalog.watch             - Reload the catalog file while running (true/false)
  catalog.debounce_ms       - Quiet period before a changed catalog is reloaded
  budget.limit              - Grand total above which the plan is over budget (0 = none)
  budget.warning_threshold  - Grand total at which to warn (0 = none)
  logging.enabled           - Write a log file (true/false)
  logging.level             - Log level: debug, info, warn, error
  logging.dir               - Log directory (empty = <config dir>/logs)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/confplan/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  confplan config reset               # Reset all to defaults
  confplan config reset budget.limit  # Reset only budget.limit to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(themeCmd)
}

// Register adds all config-related commands to the given parent command.
// This is the main entry point for integrating the config subpackage with
// the root command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyTypes maps every settable key to the kind of value it accepts.
var keyTypes = map[string]string{
	"tui.theme":                "theme",
	"tui.show_details":         "bool",
	"tui.currency":             "string",
	"tui.locale":               "string",
	"plan.number_of_people":    "int",
	"plan.meal_pricing":        "pricing",
	"catalog.path":             "string",
	"catalog.watch":            "bool",
	"catalog.debounce_ms":      "int",
	"budget.limit":             "float",
	"budget.warning_threshold": "float",
	"logging.enabled":          "bool",
	"logging.level":            "level",
	"logging.dir":              "string",
}

// defaultValues returns the default of every settable key.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"tui.theme":                d.TUI.Theme,
		"tui.show_details":         d.TUI.ShowDetails,
		"tui.currency":             d.TUI.Currency,
		"tui.locale":               d.TUI.Locale,
		"plan.number_of_people":    d.Plan.NumberOfPeople,
		"plan.meal_pricing":        d.Plan.MealPricing,
		"catalog.path":             d.Catalog.Path,
		"catalog.watch":            d.Catalog.Watch,
		"catalog.debounce_ms":      d.Catalog.DebounceMs,
		"budget.limit":             d.Budget.Limit,
		"budget.warning_threshold": d.Budget.WarningThreshold,
		"logging.enabled":          d.Logging.Enabled,
		"logging.level":            d.Logging.Level,
		"logging.dir":              d.Logging.Dir,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(out, "Configuration is invalid, showing defaults:\n%v\n\n", err)
		cfg = appconfig.Default()
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	writeConfig(out, cfg)
	return nil
}

func writeConfig(out io.Writer, cfg *appconfig.Config) {
	// TUI settings
	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  show_details: %v\n", cfg.TUI.ShowDetails)
	fmt.Fprintf(out, "  currency: %s\n", cfg.TUI.Currency)
	fmt.Fprintf(out, "  locale: %s\n", cfg.TUI.Locale)

	// Plan settings
	fmt.Fprintln(out, "plan:")
	fmt.Fprintf(out, "  number_of_people: %d\n", cfg.Plan.NumberOfPeople)
	fmt.Fprintf(out, "  meal_pricing: %s\n", cfg.Plan.MealPricing)

	// Catalog settings
	fmt.Fprintln(out, "catalog:")
	fmt.Fprintf(out, "  path: %s\n", cfg.Catalog.Path)
	fmt.Fprintf(out, "  watch: %v\n", cfg.Catalog.Watch)
	fmt.Fprintf(out, "  debounce_ms: %d\n", cfg.Catalog.DebounceMs)

	// Budget settings
	fmt.Fprintln(out, "budget:")
	fmt.Fprintf(out, "  limit: %g\n", cfg.Budget.Limit)
	fmt.Fprintf(out, "  warning_threshold: %g\n", cfg.Budget.WarningThreshold)

	// Logging settings
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.ResolveDir())
}

// parseValue converts value to the type expected by key.
func parseValue(key, value string) (any, error) {
	keyType, ok := keyTypes[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'confplan config set --help' to see valid keys", key)
	}

	switch keyType {
	case "theme":
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.BuiltinThemes(), ", "))
		}
		return value, nil
	case "pricing":
		if !slices.Contains(planner.ValidMealPricing(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(planner.ValidMealPricing(), ", "))
		}
		return value, nil
	case "level":
		level := strings.ToLower(value)
		if !slices.Contains(appconfig.ValidLogLevels(), level) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return level, nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case "float":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a number", key)
		}
		if floatVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return floatVal, nil
	}
	return value, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]
	out := cmd.OutOrStdout()

	typedValue, err := parseValue(key, value)
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Validate the whole config so cross-field rules apply too
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return err
	}

	configFile, err := writeConfigFile()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// writeConfigFile writes the current viper settings to the config file in
// use, or the default path when none was read.
func writeConfigFile() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = appconfig.ConfigFile()
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// defaultConfigContent is the commented file written by 'config init'.
const defaultConfigContent = `# confplan configuration

# TUI (terminal user interface) settings
tui:
  # Color theme: default, dracula, nord, solarized-light
  theme: default
  # Open the cost breakdown when the planner starts
  show_details: false
  # Currency symbol printed before amounts
  currency: "$"
  # Locale used for digit grouping, e.g. en-US prints 6,550.00
  locale: en-US

# Initial plan settings
plan:
  # Attendee count a new plan starts with
  number_of_people: 1
  # How meal costs follow the attendee count:
  #   live   - recomputed from the current count
  #   locked - count captured when the meal was selected
  meal_pricing: live

# Price list
catalog:
  # YAML catalog file; empty uses the built-in prices.
  # Export the built-in list with: confplan catalog --export
  path: ""
  # Reload the catalog file when it changes while the planner runs
  watch: true
  # Quiet period in milliseconds before a changed file is reloaded
  debounce_ms: 100

# Budget monitoring (0 disables a check)
budget:
  # Grand total above which the plan is over budget
  limit: 0
  # Grand total at which to warn
  warning_threshold: 0

# Logging
logging:
  enabled: true
  # debug logs every plan change with its totals
  level: info
  # Directory for confplan.log; empty uses <config dir>/logs
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()
	out := cmd.OutOrStdout()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'confplan config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize confplan's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: CONFPLAN_* (e.g., CONFPLAN_BUDGET_LIMIT)")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()
	out := cmd.OutOrStdout()

	// Check if config file exists, if not create it
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintf(out, "Config file doesn't exist, creating with defaults...\n")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	// Find an editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		// Try common editors
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	// Open the editor
	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(out, "Config file saved: %s\n", configFile)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		// Reset all values
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		// Reset specific key
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'confplan config set --help' to see valid keys", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfigFile()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}
