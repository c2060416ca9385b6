package budget

import (
	"testing"

	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/planner"
)

// mockProvider implements TotalsProvider for testing.
type mockProvider struct {
	totals planner.Totals
}

func (m *mockProvider) Totals() planner.Totals {
	return m.totals
}

func TestNewManager(t *testing.T) {
	cfg := Config{Limit: 10000, WarningThreshold: 8000}

	mgr := NewManager(cfg, nil, Callbacks{}, nil)
	if mgr == nil {
		t.Fatal("NewManager returned nil")
	}
	if mgr.config.Limit != 10000 {
		t.Errorf("Limit = %v, want 10000", mgr.config.Limit)
	}
	if !mgr.Enabled() {
		t.Error("Enabled() = false, want true")
	}
}

func TestNewManagerFromConfig(t *testing.T) {
	appCfg := &config.Config{
		Budget: config.BudgetConfig{Limit: 15000, WarningThreshold: 12000},
	}

	mgr := NewManagerFromConfig(appCfg, nil, Callbacks{}, nil)
	if mgr.config.Limit != 15000 {
		t.Errorf("Limit = %v, want 15000", mgr.config.Limit)
	}
	if mgr.config.WarningThreshold != 12000 {
		t.Errorf("WarningThreshold = %v, want 12000", mgr.config.WarningThreshold)
	}
}

func TestNewManagerFromConfig_NilConfig(t *testing.T) {
	mgr := NewManagerFromConfig(nil, nil, Callbacks{}, nil)
	if mgr.Enabled() {
		t.Error("Enabled() = true, want false for nil config")
	}
}

func TestReport(t *testing.T) {
	provider := &mockProvider{totals: planner.Totals{Venue: 5000, AV: 1000, Meals: 2000}}
	mgr := NewManager(Config{Limit: 10000}, provider, Callbacks{}, nil)

	r := mgr.Report()

	if r.GrandTotal != 8000 {
		t.Errorf("GrandTotal = %v, want 8000", r.GrandTotal)
	}
	if r.Remaining != 2000 {
		t.Errorf("Remaining = %v, want 2000", r.Remaining)
	}
	if r.UsedPercent != 80 {
		t.Errorf("UsedPercent = %v, want 80", r.UsedPercent)
	}
	if r.Status != StatusOK {
		t.Errorf("Status = %q, want %q", r.Status, StatusOK)
	}
}

func TestReport_NilProvider(t *testing.T) {
	mgr := NewManager(Config{Limit: 100}, nil, Callbacks{}, nil)
	if r := mgr.Report(); r.GrandTotal != 0 || r.Status != StatusOK {
		t.Errorf("Report() = %+v, want zero total and ok", r)
	}
}

func TestCheck_Transitions(t *testing.T) {
	provider := &mockProvider{}
	var warnings, limits []float64
	callbacks := Callbacks{
		OnBudgetWarning: func(total float64) { warnings = append(warnings, total) },
		OnBudgetLimit:   func(total float64) { limits = append(limits, total) },
	}
	mgr := NewManager(Config{Limit: 1000, WarningThreshold: 800}, provider, callbacks, nil)

	steps := []struct {
		total float64
		want  Status
	}{
		{total: 100, want: StatusOK},
		{total: 800, want: StatusWarning},
		{total: 900, want: StatusWarning},
		{total: 1000, want: StatusWarning},
		{total: 1001, want: StatusOverLimit},
		{total: 1500, want: StatusOverLimit},
		{total: 200, want: StatusOK},
		{total: 850, want: StatusWarning},
	}
	for i, step := range steps {
		provider.totals = planner.Totals{Venue: step.total}
		if got := mgr.Check(); got != step.want {
			t.Errorf("step %d: Check() = %q, want %q", i, got, step.want)
		}
	}

	if len(warnings) != 2 {
		t.Errorf("OnBudgetWarning called %d times, want 2", len(warnings))
	}
	if len(limits) != 1 || limits[0] != 1001 {
		t.Errorf("OnBudgetLimit calls = %v, want [1001]", limits)
	}
}

func TestCheck_Disabled(t *testing.T) {
	provider := &mockProvider{totals: planner.Totals{Venue: 1e9}}
	called := false
	mgr := NewManager(Config{}, provider, Callbacks{
		OnBudgetLimit: func(float64) { called = true },
	}, nil)

	if got := mgr.Check(); got != StatusOK {
		t.Errorf("Check() = %q, want ok when disabled", got)
	}
	if called {
		t.Error("OnBudgetLimit should not fire when no limit is set")
	}
}

func TestCheck_WithStore(t *testing.T) {
	store := planner.NewStore([]planner.LineItem{{Name: "Auditorium Hall", Cost: 500, Cap: 3}}, nil, nil)
	mgr := NewManager(Config{Limit: 1000}, store, Callbacks{}, nil)

	store.IncrementVenue(0)
	store.IncrementVenue(0)
	if got := mgr.Check(); got != StatusOK {
		t.Errorf("Check() at 1000 = %q, want ok", got)
	}
	store.IncrementVenue(0)
	if got := mgr.Check(); got != StatusOverLimit {
		t.Errorf("Check() at 1500 = %q, want over_limit", got)
	}
}

func TestUpdateConfig(t *testing.T) {
	provider := &mockProvider{totals: planner.Totals{Meals: 500}}
	mgr := NewManager(Config{}, provider, Callbacks{}, nil)

	mgr.UpdateConfig(Config{Limit: 400})
	if got := mgr.Check(); got != StatusOverLimit {
		t.Errorf("Check() after UpdateConfig = %q, want over_limit", got)
	}
}
