package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"golang.org/x/text/language"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "budget.limit")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validatePlan()...)
	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateBudget()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !styles.IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.BuiltinThemes(), ", ")),
		})
	}

	const maxCurrencyLength = 4
	if len([]rune(c.TUI.Currency)) > maxCurrencyLength {
		errors = append(errors, ValidationError{
			Field:   "tui.currency",
			Value:   c.TUI.Currency,
			Message: fmt.Sprintf("exceeds maximum of %d characters", maxCurrencyLength),
		})
	}

	if c.TUI.Locale != "" {
		if _, err := language.Parse(c.TUI.Locale); err != nil {
			errors = append(errors, ValidationError{
				Field:   "tui.locale",
				Value:   c.TUI.Locale,
				Message: "must be a BCP 47 language tag such as en-US",
			})
		}
	}

	return errors
}

// validatePlan validates the PlanConfig
func (c *Config) validatePlan() []ValidationError {
	var errors []ValidationError

	if c.Plan.NumberOfPeople < 1 {
		errors = append(errors, ValidationError{
			Field:   "plan.number_of_people",
			Value:   c.Plan.NumberOfPeople,
			Message: "must be at least 1",
		})
	}

	if c.Plan.MealPricing != "" && !slices.Contains(planner.ValidMealPricing(), c.Plan.MealPricing) {
		errors = append(errors, ValidationError{
			Field:   "plan.meal_pricing",
			Value:   c.Plan.MealPricing,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(planner.ValidMealPricing(), ", ")),
		})
	}

	return errors
}

// validateCatalog validates the CatalogConfig
func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	if strings.ContainsRune(c.Catalog.Path, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "catalog.path",
			Value:   c.Catalog.Path,
			Message: "path contains invalid null character",
		})
	}

	if c.Catalog.DebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.debounce_ms",
			Value:   c.Catalog.DebounceMs,
			Message: "must be non-negative",
		})
	}

	const maxDebounceMs = 10000
	if c.Catalog.DebounceMs > maxDebounceMs {
		errors = append(errors, ValidationError{
			Field:   "catalog.debounce_ms",
			Value:   c.Catalog.DebounceMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxDebounceMs),
		})
	}

	return errors
}

// validateBudget validates the BudgetConfig
func (c *Config) validateBudget() []ValidationError {
	var errors []ValidationError

	if c.Budget.Limit < 0 {
		errors = append(errors, ValidationError{
			Field:   "budget.limit",
			Value:   c.Budget.Limit,
			Message: "must be non-negative",
		})
	}

	if c.Budget.WarningThreshold < 0 {
		errors = append(errors, ValidationError{
			Field:   "budget.warning_threshold",
			Value:   c.Budget.WarningThreshold,
			Message: "must be non-negative",
		})
	}

	// Warning threshold above the limit would never be reported
	if c.Budget.Limit > 0 && c.Budget.WarningThreshold > c.Budget.Limit {
		errors = append(errors, ValidationError{
			Field:   "budget.warning_threshold",
			Value:   c.Budget.WarningThreshold,
			Message: fmt.Sprintf("must not exceed budget.limit (%.2f)", c.Budget.Limit),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if strings.ContainsRune(c.Logging.Dir, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "path contains invalid null character",
		})
	}

	return errors
}
