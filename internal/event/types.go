package event

import (
	"time"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/planner"
)

// Event types published by the planner.
const (
	TypePlanChanged         = "plan.changed"
	TypeBudgetStatusChanged = "budget.status_changed"
	TypeCatalogReloaded     = "catalog.reloaded"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// PlanChangedEvent is emitted after an operation changed the plan.
type PlanChangedEvent struct {
	baseEvent
	Action  string          // Operation that caused the change, e.g. "increment", "reset"
	Section planner.Section // Section the operation targeted; empty for plan-wide changes
	Summary planner.Summary // Plan state after the change
}

// NewPlanChangedEvent creates a PlanChangedEvent.
func NewPlanChangedEvent(action string, section planner.Section, summary planner.Summary) PlanChangedEvent {
	return PlanChangedEvent{
		baseEvent: newBaseEvent(TypePlanChanged),
		Action:    action,
		Section:   section,
		Summary:   summary,
	}
}

// BudgetStatusChangedEvent is emitted when the grand total moves to a
// different budget status.
type BudgetStatusChangedEvent struct {
	baseEvent
	Previous budget.Status
	Current  budget.Status
	Report   budget.Report
}

// NewBudgetStatusChangedEvent creates a BudgetStatusChangedEvent.
func NewBudgetStatusChangedEvent(previous, current budget.Status, report budget.Report) BudgetStatusChangedEvent {
	return BudgetStatusChangedEvent{
		baseEvent: newBaseEvent(TypeBudgetStatusChanged),
		Previous:  previous,
		Current:   current,
		Report:    report,
	}
}

// CatalogReloadedEvent is emitted after the catalog file was reloaded. Err
// is set when the new file was rejected and the plan kept its prices.
type CatalogReloadedEvent struct {
	baseEvent
	Name    string
	Entries int
	Err     error
}

// NewCatalogReloadedEvent creates a CatalogReloadedEvent.
func NewCatalogReloadedEvent(name string, entries int, err error) CatalogReloadedEvent {
	return CatalogReloadedEvent{
		baseEvent: newBaseEvent(TypeCatalogReloaded),
		Name:      name,
		Entries:   entries,
		Err:       err,
	}
}
