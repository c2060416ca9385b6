package view

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/keymap"
	"github.com/Iron-Ham/confplan/internal/util"
)

func TestRenderTabs(t *testing.T) {
	v := NewSectionView(nil)
	out := v.RenderTabs(planner.SectionAV, planner.Totals{Venue: 5500, AV: 200})

	for _, want := range []string{"1 Venue $5,500.00", "2 Add-ons $200.00", "3 Meals $0.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTabs() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSection_Venue(t *testing.T) {
	store := catalog.Default().NewStore()
	for range 3 {
		store.IncrementVenue(1)
	}

	out := NewSectionView(nil).RenderSection(store, planner.SectionVenue, 1)

	tests := []string{
		"> ",
		"Auditorium Hall (Capacity:200)",
		"$16,500.00",
		"(max 3)",
		"Venue total: $16,500.00",
	}
	for _, want := range tests {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSection() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSection_AddonsHaveNoCap(t *testing.T) {
	store := catalog.Default().NewStore()
	for range 12 {
		store.IncrementAddon(0)
	}

	out := NewSectionView(nil).RenderSection(store, planner.SectionAV, 0)
	if strings.Contains(out, "(max") {
		t.Errorf("add-on rows should not show a cap:\n%s", out)
	}
	if !strings.Contains(out, "Add-ons total: $2,400.00") {
		t.Errorf("missing add-on total in:\n%s", out)
	}
}

func TestRenderSection_Meals(t *testing.T) {
	store := catalog.Default().NewStore()
	store.SetNumberOfPeople(10)
	store.ToggleMeal(2)

	out := NewSectionView(nil).RenderSection(store, planner.SectionMeals, 0)

	for _, want := range []string{"Number of people: 10", "[x]", "[ ]", "/person", "Meals total: $650.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSection(meals) missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSection_Empty(t *testing.T) {
	store := planner.NewStore(nil, nil, nil)
	out := NewSectionView(nil).RenderSection(store, planner.SectionAV, 0)
	if !strings.Contains(out, "No items in this section") {
		t.Errorf("empty section should show placeholder:\n%s", out)
	}
}

func TestRenderDetails(t *testing.T) {
	t.Run("empty plan", func(t *testing.T) {
		store := catalog.Default().NewStore()
		out := RenderDetails(store.Breakdown(), nil)
		if !strings.Contains(out, "Nothing selected yet") {
			t.Errorf("missing empty-state line in:\n%s", out)
		}
		if !strings.Contains(out, "Grand total") {
			t.Errorf("missing grand total in:\n%s", out)
		}
	})

	t.Run("with selections", func(t *testing.T) {
		store := catalog.Default().NewStore()
		store.IncrementVenue(1)
		store.IncrementAddon(0)
		store.IncrementAddon(0)
		store.SetNumberOfPeople(4)
		store.ToggleMeal(2)

		out := RenderDetails(store.Breakdown(), nil)
		for _, want := range []string{
			"Auditorium Hall",
			"Projectors",
			"x2",
			"Lunch",
			"4 people",
			"$260.00",
			"$6,160.00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("RenderDetails() missing %q in:\n%s", want, out)
			}
		}
	})
}

func TestQuantityLabel(t *testing.T) {
	tests := []struct {
		name string
		item planner.DisplayItem
		want string
	}{
		{"venue", planner.DisplayItem{Section: planner.SectionVenue, Quantity: 2}, "x2"},
		{"one person", planner.DisplayItem{Section: planner.SectionMeals, People: 1}, "1 person"},
		{"many people", planner.DisplayItem{Section: planner.SectionMeals, People: 25}, "25 people"},
		{"flat fee meal", planner.DisplayItem{Section: planner.SectionMeals}, "flat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantityLabel(tt.item); got != tt.want {
				t.Errorf("QuantityLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBudgetBadge(t *testing.T) {
	money := util.DefaultMoney()
	tests := []struct {
		name   string
		report budget.Report
		want   string
	}{
		{"ok with limit", budget.Report{Status: budget.StatusOK, Limit: 1000, Remaining: 400}, "$400.00 left"},
		{"ok without limit", budget.Report{Status: budget.StatusOK}, "within budget"},
		{"warning", budget.Report{Status: budget.StatusWarning, Limit: 1000, UsedPercent: 85}, "85% of budget"},
		{"warning threshold only", budget.Report{Status: budget.StatusWarning}, "near budget"},
		{"over", budget.Report{Status: budget.StatusOverLimit, Limit: 1000, Remaining: -250}, "OVER BUDGET by $250.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BudgetBadge(tt.report, money); !strings.Contains(got, tt.want) {
				t.Errorf("BudgetBadge() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRenderStatusBar(t *testing.T) {
	state := StatusBarState{
		Report:         budget.Report{GrandTotal: 6550, Limit: 5000, Remaining: -1550, Status: budget.StatusOverLimit},
		BudgetEnabled:  true,
		NumberOfPeople: 10,
		Flash:          "Catalog reloaded (14 items)",
	}
	out := RenderStatusBar(state, nil)

	for _, want := range []string{"Total $6,550.00", "10 people", "OVER BUDGET", "Catalog reloaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderStatusBar() missing %q in:\n%s", want, out)
		}
	}

	state.BudgetEnabled = false
	state.Flash = ""
	out = RenderStatusBar(state, nil)
	if strings.Contains(out, "BUDGET") {
		t.Errorf("budget badge shown while disabled:\n%s", out)
	}
}

func TestRenderHelpBar(t *testing.T) {
	km := keymap.DefaultKeymap()

	t.Run("compact", func(t *testing.T) {
		out := RenderHelpBar(km, keymap.ModeNormal, false)
		for _, want := range []string{"[tab] next section", "[p] set people", "[q/ctrl+c] quit"} {
			if !strings.Contains(out, want) {
				t.Errorf("compact help missing %q in:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Navigation:") {
			t.Error("compact help should not list categories")
		}
	})

	t.Run("full", func(t *testing.T) {
		out := RenderHelpBar(km, keymap.ModeNormal, true)
		for _, want := range []string{"Navigation:", "Plan:", "View:", "[1/2/3] jump", "[k/up] up"} {
			if !strings.Contains(out, want) {
				t.Errorf("full help missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("people mode", func(t *testing.T) {
		out := RenderHelpBar(km, keymap.ModePeople, true)
		for _, want := range []string{"[enter] apply", "[esc] cancel"} {
			if !strings.Contains(out, want) {
				t.Errorf("people help missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("nil keymap", func(t *testing.T) {
		if got := RenderHelpBar(nil, keymap.ModeNormal, false); got != "" {
			t.Errorf("RenderHelpBar(nil) = %q, want empty", got)
		}
	})
}
