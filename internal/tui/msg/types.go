// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// Messages produced outside the Update loop (the catalog watcher, timers)
// are declared here so both the producers and the model can share them.
package msg

import (
	"time"

	"github.com/Iron-Ham/confplan/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// CatalogReloadedMsg carries a catalog re-read from disk, or the error that
// prevented reading it.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// ClearFlashMsg clears the flash message with the given sequence number.
// A newer flash keeps its own sequence so an old timer cannot clear it.
type ClearFlashMsg struct {
	Seq int
}

// ClearFlashAfter returns a command that emits ClearFlashMsg{seq} after d.
func ClearFlashAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearFlashMsg{Seq: seq}
	})
}

// CatalogReloaded wraps a reload result as a message.
func CatalogReloaded(c *catalog.Catalog, err error) tea.Msg {
	return CatalogReloadedMsg{Catalog: c, Err: err}
}
