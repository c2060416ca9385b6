package tui

import (
	"strconv"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/logging"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/keymap"
	"github.com/Iron-Ham/confplan/internal/tui/update"
	"github.com/Iron-Ham/confplan/internal/tui/view"
	"github.com/Iron-Ham/confplan/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
)

// Options configures a Model. Nil fields get working defaults.
type Options struct {
	Catalog *catalog.Catalog
	Store   *planner.Store
	Budget  *budget.Manager
	Keymap  *keymap.Keymap
	Logger  *logging.Logger
	Money   *util.Money

	// Events receives plan, budget and catalog events. A private bus is
	// created when nil.
	Events *event.Bus

	// ShowDetails opens the cost breakdown on start.
	ShowDetails bool
}

// Model holds the TUI application state
type Model struct {
	// Core components
	store    *planner.Store
	catalog  *catalog.Catalog
	budget   *budget.Manager
	keymap   *keymap.Keymap
	logger   *logging.Logger
	money    *util.Money
	events   *event.Bus
	sections *view.SectionView

	// UI state
	mode         keymap.Mode
	section      planner.Section
	cursors      map[planner.Section]int
	showDetails  bool
	showHelp     bool
	peopleInput  textinput.Model
	budgetStatus budget.Status
	width        int
	height       int
	quitting     bool

	// Flash message shown in the status bar until cleared by a timer
	flash          string
	flashIsErr     bool
	flashSeq       int
	flashScheduled int
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	store := opts.Store
	if store == nil {
		store = cat.NewStore()
	}
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	money := opts.Money
	if money == nil {
		money = util.DefaultMoney()
	}
	mgr := opts.Budget
	if mgr == nil {
		mgr = budget.NewManager(budget.Config{}, store, budget.Callbacks{}, logger)
	}

	bus := opts.Events
	if bus == nil {
		bus = event.NewBus(logger)
	}
	tuiLogger := logger.WithComponent("tui")
	bus.Subscribe(event.TypePlanChanged, update.PlanLogger(tuiLogger))

	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 8
	ti.Placeholder = "1"
	ti.Prompt = "People: "

	return Model{
		store:        store,
		catalog:      cat,
		budget:       mgr,
		keymap:       km,
		logger:       tuiLogger,
		money:        money,
		events:       bus,
		sections:     view.NewSectionView(money),
		mode:         keymap.ModeNormal,
		section:      planner.SectionVenue,
		cursors:      make(map[planner.Section]int),
		showDetails:  opts.ShowDetails,
		peopleInput:  ti,
		budgetStatus: mgr.Check(),
	}
}

// Store returns the plan being edited.
func (m Model) Store() *planner.Store { return m.store }

// Logger returns the TUI logger.
func (m Model) Logger() *logging.Logger { return m.logger }

// Events returns the bus the model publishes to.
func (m Model) Events() *event.Bus { return m.events }

// Catalog returns the catalog currently backing the store.
func (m Model) Catalog() *catalog.Catalog { return m.catalog }

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode { return m.mode }

// Section returns the focused section.
func (m Model) Section() planner.Section { return m.section }

// Cursor returns the cursor row of the focused section.
func (m Model) Cursor() int { return m.cursors[m.section] }

// ShowingDetails reports whether the cost breakdown is open.
func (m Model) ShowingDetails() bool { return m.showDetails }

// Flash returns the current flash message and whether it is an error.
func (m Model) Flash() (string, bool) { return m.flash, m.flashIsErr }

// BudgetStatus returns the budget status seen after the last plan change.
func (m Model) BudgetStatus() budget.Status { return m.budgetStatus }

// SetCatalog records the catalog currently backing the store.
func (m *Model) SetCatalog(c *catalog.Catalog) { m.catalog = c }

// SetErrorMessage shows msg as an error flash.
func (m *Model) SetErrorMessage(msg string) { m.setFlash(msg, true) }

// SetInfoMessage shows msg as an info flash.
func (m *Model) SetInfoMessage(msg string) { m.setFlash(msg, false) }

// ClampCursors keeps every section cursor inside its collection.
func (m *Model) ClampCursors() {
	for _, section := range planner.Sections() {
		n := m.store.Len(section)
		switch {
		case n == 0:
			m.cursors[section] = 0
		case m.cursors[section] >= n:
			m.cursors[section] = n - 1
		case m.cursors[section] < 0:
			m.cursors[section] = 0
		}
	}
}

func (m *Model) setFlash(text string, isErr bool) {
	m.flash = text
	m.flashIsErr = isErr
	m.flashSeq++
}

// peopleInputValue returns the current people count as input text.
func (m Model) peopleInputValue() string {
	return strconv.Itoa(m.store.NumberOfPeople())
}
