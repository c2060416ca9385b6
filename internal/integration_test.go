// Package internal contains integration tests that verify the planner
// packages work together: a catalog file feeds the store, the TUI model
// drives it, the budget manager watches the totals and every change is
// published on the event bus.
package internal

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/testutil"
	"github.com/Iron-Ham/confplan/internal/tui"
	tuimsg "github.com/Iron-Ham/confplan/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(tui.Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestCatalogReloadRepricesPlan edits the catalog file while a plan is
// open and checks that the new prices flow through to the totals, the
// budget status and the published events.
func TestCatalogReloadRepricesPlan(t *testing.T) {
	path := testutil.WriteCatalog(t, "")
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}

	store := cat.NewStore(planner.WithNumberOfPeople(4))
	var overLimit []float64
	mgr := budget.NewManager(budget.Config{Limit: 2500}, store, budget.Callbacks{
		OnBudgetLimit: func(total float64) { overLimit = append(overLimit, total) },
	}, nil)

	bus := event.NewBus(nil)
	var statusEvents []event.BudgetStatusChangedEvent
	var reloadEvents []event.CatalogReloadedEvent
	bus.Subscribe(event.TypeBudgetStatusChanged, func(e event.Event) {
		statusEvents = append(statusEvents, e.(event.BudgetStatusChangedEvent))
	})
	bus.Subscribe(event.TypeCatalogReloaded, func(e event.Event) {
		reloadEvents = append(reloadEvents, e.(event.CatalogReloadedEvent))
	})

	m := tui.NewModel(tui.Options{Catalog: cat, Store: store, Budget: mgr, Events: bus})
	m = update(t, m, runeKey('+'), runeKey('+'), runeKey('+')) // Hall is capped at 2

	if got := store.GrandTotal(); got != 2000 {
		t.Fatalf("GrandTotal() = %v, want 2000", got)
	}
	if len(statusEvents) != 0 {
		t.Fatalf("unexpected budget events before reload: %+v", statusEvents)
	}

	reloads := make(chan tea.Msg, 4)
	w, err := catalog.NewWatcher(path, func(c *catalog.Catalog, err error) {
		reloads <- tuimsg.CatalogReloaded(c, err)
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.SetDebounce(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	repriced := strings.Replace(testutil.SmallCatalog, "cost: 1000", "cost: 1500", 1)
	if err := os.WriteFile(path, []byte(repriced), 0644); err != nil {
		t.Fatalf("failed to update catalog: %v", err)
	}

	// A reader can catch the file half-written; wait for a clean reload.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case msg := <-reloads:
			m = update(t, m, msg)
			reloaded = msg.(tuimsg.CatalogReloadedMsg).Err == nil
		case <-deadline:
			t.Fatal("timed out waiting for catalog reload")
		}
	}

	if got := store.GrandTotal(); got != 3000 {
		t.Errorf("GrandTotal() after reload = %v, want 3000", got)
	}
	if got := store.Venue()[0].Quantity; got != 2 {
		t.Errorf("Hall quantity after reload = %d, want 2", got)
	}
	if m.BudgetStatus() != budget.StatusOverLimit {
		t.Errorf("BudgetStatus() = %v, want over_limit", m.BudgetStatus())
	}
	if len(overLimit) != 1 || overLimit[0] != 3000 {
		t.Errorf("OnBudgetLimit calls = %v, want [3000]", overLimit)
	}
	if len(statusEvents) != 1 || statusEvents[0].Current != budget.StatusOverLimit {
		t.Errorf("budget events = %+v, want one over_limit", statusEvents)
	}
	if n := len(reloadEvents); n == 0 || reloadEvents[n-1].Name != "Small" || reloadEvents[n-1].Entries != 4 {
		t.Errorf("reload events = %+v, want the last one for Small", reloadEvents)
	}
}

// TestMealPricingModes checks the two meal pricing modes against the same
// sequence of attendee changes.
func TestMealPricingModes(t *testing.T) {
	tests := []struct {
		pricing planner.MealPricing
		want    float64
	}{
		// Coffee selected at 4 people, count raised to 10 afterwards
		{planner.PricingLive, 5 * 10},
		{planner.PricingLocked, 5 * 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.pricing), func(t *testing.T) {
			cat, err := catalog.Load(testutil.WriteCatalog(t, ""))
			if err != nil {
				t.Fatalf("catalog.Load() error = %v", err)
			}
			store := cat.NewStore(planner.WithMealPricing(tt.pricing), planner.WithNumberOfPeople(4))

			m := tui.NewModel(tui.Options{Catalog: cat, Store: store})
			m = update(t, m,
				runeKey('3'),                   // Meals
				tea.KeyMsg{Type: tea.KeySpace}, // Coffee
				runeKey('p'),
				tea.KeyMsg{Type: tea.KeyBackspace},
				runeKey('1'), runeKey('0'),
				tea.KeyMsg{Type: tea.KeyEnter},
			)

			if got := store.NumberOfPeople(); got != 10 {
				t.Fatalf("NumberOfPeople() = %d, want 10", got)
			}
			if got := store.SectionTotal(planner.SectionMeals); got != tt.want {
				t.Errorf("meals total = %v, want %v", got, tt.want)
			}
		})
	}
}
