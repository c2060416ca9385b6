package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "unknown theme",
			modify:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
		},
		{
			name:      "long currency",
			modify:    func(c *Config) { c.TUI.Currency = "dollars" },
			wantField: "tui.currency",
		},
		{
			name:      "malformed locale",
			modify:    func(c *Config) { c.TUI.Locale = "en_US!!" },
			wantField: "tui.locale",
		},
		{
			name:      "zero people",
			modify:    func(c *Config) { c.Plan.NumberOfPeople = 0 },
			wantField: "plan.number_of_people",
		},
		{
			name:      "unknown meal pricing",
			modify:    func(c *Config) { c.Plan.MealPricing = "per-plate" },
			wantField: "plan.meal_pricing",
		},
		{
			name:      "catalog path with null byte",
			modify:    func(c *Config) { c.Catalog.Path = "cat\x00alog.yaml" },
			wantField: "catalog.path",
		},
		{
			name:      "negative debounce",
			modify:    func(c *Config) { c.Catalog.DebounceMs = -5 },
			wantField: "catalog.debounce_ms",
		},
		{
			name:      "huge debounce",
			modify:    func(c *Config) { c.Catalog.DebounceMs = 60000 },
			wantField: "catalog.debounce_ms",
		},
		{
			name:      "negative limit",
			modify:    func(c *Config) { c.Budget.Limit = -1 },
			wantField: "budget.limit",
		},
		{
			name:      "negative warning threshold",
			modify:    func(c *Config) { c.Budget.WarningThreshold = -1 },
			wantField: "budget.warning_threshold",
		},
		{
			name: "warning above limit",
			modify: func(c *Config) {
				c.Budget.Limit = 1000
				c.Budget.WarningThreshold = 1500
			},
			wantField: "budget.warning_threshold",
		},
		{
			name:      "unknown log level",
			modify:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
		{
			name:      "log dir with null byte",
			modify:    func(c *Config) { c.Logging.Dir = "/tmp/\x00" },
			wantField: "logging.dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_AcceptsValidValues(t *testing.T) {
	cfg := Default()
	cfg.TUI.Theme = "nord"
	cfg.TUI.Currency = "€"
	cfg.TUI.Locale = "de-DE"
	cfg.Plan.NumberOfPeople = 250
	cfg.Plan.MealPricing = "locked"
	cfg.Budget.Limit = 20000
	cfg.Budget.WarningThreshold = 20000
	cfg.Logging.Level = "debug"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() returned errors for valid config: %v", errs)
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Plan.NumberOfPeople = -3
	cfg.Budget.Limit = -10
	cfg.Logging.Level = "loud"

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
}
