package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete confplan configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Plan    PlanConfig    `mapstructure:"plan"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Budget  BudgetConfig  `mapstructure:"budget"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "dracula", "nord", "solarized-light"
	Theme string `mapstructure:"theme"`
	// ShowDetails opens the cost breakdown panel on startup
	ShowDetails bool `mapstructure:"show_details"`
	// Currency is the symbol printed before amounts (default: "$")
	Currency string `mapstructure:"currency"`
	// Locale is the BCP 47 tag used for digit grouping (default: "en-US")
	Locale string `mapstructure:"locale"`
}

// PlanConfig controls the initial state of a plan
type PlanConfig struct {
	// NumberOfPeople is the attendee count a new plan starts with (default: 1)
	NumberOfPeople int `mapstructure:"number_of_people"`
	// MealPricing selects how meal costs follow the attendee count
	// Options: "live" (recomputed from the current count), "locked" (count captured at selection)
	MealPricing string `mapstructure:"meal_pricing"`
}

// CatalogConfig controls where prices come from
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty uses the built-in price list.
	Path string `mapstructure:"path"`
	// Watch reloads the catalog file while the TUI is running (default: true)
	Watch bool `mapstructure:"watch"`
	// DebounceMs is the quiet period before a changed file is reloaded (default: 100)
	DebounceMs int `mapstructure:"debounce_ms"`
}

// BudgetConfig controls budget monitoring
type BudgetConfig struct {
	// Limit marks the plan over budget when the grand total exceeds it, 0 = no limit
	Limit float64 `mapstructure:"limit"`
	// WarningThreshold warns when the grand total reaches this amount, 0 = no warning
	WarningThreshold float64 `mapstructure:"warning_threshold"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled controls whether logging is active (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory holding confplan.log. Empty means <config dir>/logs.
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:       "default",
			ShowDetails: false,
			Currency:    "$",
			Locale:      "en-US",
		},
		Plan: PlanConfig{
			NumberOfPeople: 1,
			MealPricing:    "live",
		},
		Catalog: CatalogConfig{
			Path:       "",
			Watch:      true,
			DebounceMs: 100,
		},
		Budget: BudgetConfig{
			Limit:            0, // No limit by default
			WarningThreshold: 0,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// Debounce returns the catalog reload debounce as a time.Duration
func (c *CatalogConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ResolveDir returns the log directory, falling back to <config dir>/logs.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_details", defaults.TUI.ShowDetails)
	viper.SetDefault("tui.currency", defaults.TUI.Currency)
	viper.SetDefault("tui.locale", defaults.TUI.Locale)

	// Plan defaults
	viper.SetDefault("plan.number_of_people", defaults.Plan.NumberOfPeople)
	viper.SetDefault("plan.meal_pricing", defaults.Plan.MealPricing)

	// Catalog defaults
	viper.SetDefault("catalog.path", defaults.Catalog.Path)
	viper.SetDefault("catalog.watch", defaults.Catalog.Watch)
	viper.SetDefault("catalog.debounce_ms", defaults.Catalog.DebounceMs)

	// Budget defaults
	viper.SetDefault("budget.limit", defaults.Budget.Limit)
	viper.SetDefault("budget.warning_threshold", defaults.Budget.WarningThreshold)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "confplan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".confplan"
	}
	return filepath.Join(home, ".config", "confplan")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
