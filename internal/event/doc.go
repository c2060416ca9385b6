// Package event provides a pub-sub event bus that lets the planner report
// plan changes without knowing who listens.
//
// The TUI publishes an event after every operation that changes the plan,
// when the budget status crosses a threshold and when the catalog file is
// reloaded. Subscribers such as the plan-state logger react to them without
// the key loop calling them directly.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Events
//
//   - [PlanChangedEvent]: A quantity, meal selection, attendee count or reset changed the plan
//   - [BudgetStatusChangedEvent]: The grand total moved to a different budget status
//   - [CatalogReloadedEvent]: The catalog file was reloaded, successfully or not
//
// # Thread Safety
//
// Handlers are called synchronously in the publishing goroutine and are
// protected against panics: a panicking handler does not prevent other
// handlers from being called.
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	bus.Subscribe(event.TypePlanChanged, func(e event.Event) {
//	    changed := e.(event.PlanChangedEvent)
//	    fmt.Println(changed.Action, changed.GrandTotal)
//	})
//
//	// Subscribe to all events
//	id := bus.SubscribeAll(func(e event.Event) {
//	    fmt.Println(e.EventType(), e.Timestamp())
//	})
//	defer bus.Unsubscribe(id)
//
//	bus.Publish(event.NewPlanChangedEvent("increment", store.Breakdown()))
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action": plan.changed,
// budget.status_changed, catalog.reloaded.
package event
