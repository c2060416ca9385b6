package cmd

import (
	"fmt"

	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/logging"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/util"
)

// planEnv bundles what the plan commands build from configuration.
type planEnv struct {
	cfg     *config.Config
	logger  *logging.Logger
	catalog *catalog.Catalog
	money   *util.Money
}

// loadEnv reads and validates the configuration and loads the catalog it
// points at. The caller must Close the logger.
func loadEnv() (*planEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	money, err := util.NewMoney(cfg.TUI.Currency, cfg.TUI.Locale)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	logger.Debug("configuration loaded",
		"catalog", cat.Name,
		"catalog_items", cat.Len(),
		"meal_pricing", cfg.Plan.MealPricing,
		"budget_limit", cfg.Budget.Limit,
	)

	return &planEnv{cfg: cfg, logger: logger, catalog: cat, money: money}, nil
}

// newStore creates an empty plan from the catalog with the configured
// pricing mode and attendee count.
func (e *planEnv) newStore() *planner.Store {
	return e.catalog.NewStore(
		planner.WithMealPricing(planner.MealPricing(e.cfg.Plan.MealPricing)),
		planner.WithNumberOfPeople(e.cfg.Plan.NumberOfPeople),
	)
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

// loadCatalog loads the catalog at path, or the built-in one when path is
// empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
