// Package tui implements the interactive conference plan editor.
package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/event"
	tuimsg "github.com/Iron-Ham/confplan/internal/tui/msg"
	"github.com/Iron-Ham/confplan/internal/tui/update"
	tea "github.com/charmbracelet/bubbletea"
)

// FlashDuration is how long a flash message stays in the status bar.
const FlashDuration = 3 * time.Second

// App wraps the Bubbletea program
type App struct {
	program  *tea.Program
	model    Model
	watcher  *catalog.Watcher
	debounce time.Duration
}

// New creates a new TUI application
func New(opts Options) *App {
	return &App{model: NewModel(opts)}
}

// WatchCatalog reloads the catalog at path whenever it changes on disk
// while the program runs. A non-positive debounce keeps the watcher default.
func (a *App) WatchCatalog(path string, debounce time.Duration) {
	a.watcher = nil
	a.debounce = debounce
	if path == "" {
		return
	}
	w, err := catalog.NewWatcher(path, func(c *catalog.Catalog, err error) {
		if a.program != nil {
			a.program.Send(tuimsg.CatalogReloaded(c, err))
		}
	})
	if err != nil {
		a.model.logger.Warn("catalog watcher unavailable", "path", path, "error", err)
		return
	}
	a.watcher = w
}

// Run starts the TUI application
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.watcher != nil {
		a.watcher.SetDebounce(a.debounce)
		a.watcher.Start()
		defer a.watcher.Stop()
		a.model.logger.Info("watching catalog", "path", a.watcher.Path())
	}

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)

	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tuimsg.CatalogReloadedMsg:
		update.HandleCatalogReloaded(&m, msg)
		if msg.Err != nil {
			m.events.Publish(event.NewCatalogReloadedEvent("", 0, msg.Err))
		} else if msg.Catalog != nil {
			m.events.Publish(event.NewCatalogReloadedEvent(msg.Catalog.Name, msg.Catalog.Len(), nil))
			m.afterPlanChange("catalog_reload", "")
		}
		cmd := m.flashCmd()
		return m, cmd

	case tuimsg.ClearFlashMsg:
		if msg.Seq == m.flashSeq {
			m.flash = ""
			m.flashIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// flashCmd schedules clearing of a flash set since the last call.
func (m *Model) flashCmd() tea.Cmd {
	if m.flash == "" || m.flashScheduled == m.flashSeq {
		return nil
	}
	m.flashScheduled = m.flashSeq
	return tuimsg.ClearFlashAfter(FlashDuration, m.flashSeq)
}
