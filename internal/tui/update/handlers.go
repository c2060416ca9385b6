// Package update contains the TUI handlers for messages that arrive from
// outside the key loop. Handlers work against the Context interface so they
// can be tested without a full Model.
package update

import (
	"fmt"

	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/logging"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/msg"
)

// Context provides the interface for update handlers to interact with the TUI Model.
type Context interface {
	// Store returns the plan being edited.
	Store() *planner.Store

	// Logger returns the logger instance.
	Logger() *logging.Logger

	// SetCatalog records the catalog currently backing the store.
	SetCatalog(c *catalog.Catalog)

	// SetErrorMessage sets an error message to display.
	SetErrorMessage(msg string)

	// SetInfoMessage sets an info message to display.
	SetInfoMessage(msg string)

	// ClampCursors keeps every section cursor inside its collection.
	ClampCursors()
}

// HandleCatalogReloaded applies a reloaded catalog to the store, keeping
// quantities and meal selections for items whose names survived. A failed
// reload leaves the plan untouched.
func HandleCatalogReloaded(ctx Context, m msg.CatalogReloadedMsg) {
	logger := ctx.Logger()

	if m.Err != nil {
		logger.Warn("catalog reload failed", "error", m.Err)
		ctx.SetErrorMessage(fmt.Sprintf("Catalog reload failed: %v", m.Err))
		return
	}
	if m.Catalog == nil {
		return
	}

	m.Catalog.Apply(ctx.Store())
	ctx.SetCatalog(m.Catalog)
	ctx.ClampCursors()

	logger.Info("catalog reloaded",
		"name", m.Catalog.Name,
		"entries", m.Catalog.Len(),
	)
	ctx.SetInfoMessage(fmt.Sprintf("Catalog reloaded (%d items)", m.Catalog.Len()))
}

// PlanLogger returns an event handler that writes every plan change with
// the resulting totals and active items at DEBUG.
func PlanLogger(logger *logging.Logger) event.Handler {
	return func(e event.Event) {
		changed, ok := e.(event.PlanChangedEvent)
		if !ok || !logger.Enabled(logging.LevelDebug) {
			return
		}
		summary := changed.Summary
		logger.Debug("plan updated",
			"action", changed.Action,
			"section", string(changed.Section),
			"totals", summary.Totals,
			"items", summary.Items,
			"number_of_people", summary.NumberOfPeople,
			"grand_total", summary.GrandTotal,
		)
	}
}
