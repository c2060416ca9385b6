package update

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/logging"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/msg"
)

// mockContext implements Context for testing.
type mockContext struct {
	store    *planner.Store
	logger   *logging.Logger
	catalog  *catalog.Catalog
	errorMsg string
	infoMsg  string
	clamped  bool
}

func (m *mockContext) Store() *planner.Store         { return m.store }
func (m *mockContext) Logger() *logging.Logger       { return m.logger }
func (m *mockContext) SetCatalog(c *catalog.Catalog) { m.catalog = c }
func (m *mockContext) SetErrorMessage(msg string)    { m.errorMsg = msg }
func (m *mockContext) SetInfoMessage(msg string)     { m.infoMsg = msg }
func (m *mockContext) ClampCursors()                 { m.clamped = true }

func newMockContext() *mockContext {
	return &mockContext{
		store:  catalog.Default().NewStore(),
		logger: logging.NopLogger(),
	}
}

func TestHandleCatalogReloaded_AppliesCatalog(t *testing.T) {
	ctx := newMockContext()
	ctx.store.IncrementAddon(0) // Projectors at 200

	next := catalog.Default()
	next.Name = "Spring rates"
	next.Addons[0].Cost = 250

	HandleCatalogReloaded(ctx, msg.CatalogReloadedMsg{Catalog: next})

	if ctx.catalog != next {
		t.Error("SetCatalog was not called with the new catalog")
	}
	if !ctx.clamped {
		t.Error("ClampCursors was not called")
	}
	if got := ctx.store.SectionTotal(planner.SectionAV); got != 250 {
		t.Errorf("AV total after reload = %v, want 250", got)
	}
	if !strings.Contains(ctx.infoMsg, "Catalog reloaded") {
		t.Errorf("info message = %q, want reload notice", ctx.infoMsg)
	}
	if ctx.errorMsg != "" {
		t.Errorf("unexpected error message %q", ctx.errorMsg)
	}
}

func TestHandleCatalogReloaded_ErrorKeepsPlan(t *testing.T) {
	ctx := newMockContext()
	ctx.store.IncrementVenue(1)

	HandleCatalogReloaded(ctx, msg.CatalogReloadedMsg{Err: errors.New("bad yaml")})

	if ctx.catalog != nil {
		t.Error("SetCatalog should not be called on error")
	}
	if !strings.Contains(ctx.errorMsg, "bad yaml") {
		t.Errorf("error message = %q, want it to mention the cause", ctx.errorMsg)
	}
	if got := ctx.store.GrandTotal(); got != 5500 {
		t.Errorf("GrandTotal after failed reload = %v, want 5500", got)
	}
}

func TestHandleCatalogReloaded_NilCatalog(t *testing.T) {
	ctx := newMockContext()
	HandleCatalogReloaded(ctx, msg.CatalogReloadedMsg{})

	if ctx.infoMsg != "" || ctx.errorMsg != "" || ctx.clamped {
		t.Error("nil catalog without error should be ignored")
	}
}

func TestPlanLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)

	store := catalog.Default().NewStore()
	store.SetNumberOfPeople(10)
	store.ToggleMeal(2) // Lunch

	PlanLogger(logger)(event.NewPlanChangedEvent("toggle_meal", planner.SectionMeals, store.Breakdown()))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["action"] != "toggle_meal" || entry["section"] != "meals" {
		t.Errorf("action/section = %v/%v, want toggle_meal/meals", entry["action"], entry["section"])
	}
	if entry["grand_total"] != float64(650) {
		t.Errorf("grand_total = %v, want 650", entry["grand_total"])
	}
	items, ok := entry["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one item", entry["items"])
	}
	item := items[0].(map[string]any)
	if item["name"] != "Lunch" || item["type"] != "meals" {
		t.Errorf("item = %v, want Lunch meal", item)
	}
}

func TestPlanLogger_SkippedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelInfo)

	PlanLogger(logger)(event.NewPlanChangedEvent("reset", "", planner.Summary{}))

	if buf.Len() != 0 {
		t.Errorf("expected no output at INFO level, got %q", buf.String())
	}
}

func TestPlanLogger_IgnoresOtherEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)

	PlanLogger(logger)(event.NewCatalogReloadedEvent("Default", 14, nil))

	if buf.Len() != 0 {
		t.Errorf("expected no output for a catalog event, got %q", buf.String())
	}
}
