package msg

import (
	"errors"
	"testing"
	"time"

	"github.com/Iron-Ham/confplan/internal/catalog"
)

func TestCatalogReloaded(t *testing.T) {
	c := catalog.Default()
	m, ok := CatalogReloaded(c, nil).(CatalogReloadedMsg)
	if !ok {
		t.Fatalf("CatalogReloaded() returned %T, want CatalogReloadedMsg", m)
	}
	if m.Catalog != c || m.Err != nil {
		t.Errorf("CatalogReloaded() = %+v, want catalog and nil error", m)
	}

	loadErr := errors.New("boom")
	m = CatalogReloaded(nil, loadErr).(CatalogReloadedMsg)
	if m.Catalog != nil || !errors.Is(m.Err, loadErr) {
		t.Errorf("CatalogReloaded(nil, err) = %+v", m)
	}
}

func TestClearFlashAfter(t *testing.T) {
	cmd := ClearFlashAfter(time.Millisecond, 7)
	if cmd == nil {
		t.Fatal("ClearFlashAfter() returned nil")
	}
	got, ok := cmd().(ClearFlashMsg)
	if !ok {
		t.Fatalf("command produced %T, want ClearFlashMsg", got)
	}
	if got.Seq != 7 {
		t.Errorf("Seq = %d, want 7", got.Seq)
	}
}
