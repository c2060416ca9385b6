package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	reloaded := make(chan *Catalog, 4)
	w, err := NewWatcher(path, func(c *Catalog, err error) {
		if err == nil {
			reloaded <- c
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.SetDebounce(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	updated := "version: \"1\"\naddons:\n  - name: Projector\n    cost: 75\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to update catalog: %v", err)
	}

	select {
	case c := <-reloaded:
		if len(c.Addons) != 1 || c.Addons[0].Cost != 75 {
			t.Errorf("reloaded catalog = %+v, want Projector at 75", c)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_ReportsInvalidFile(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(c *Catalog, err error) {
		if err != nil {
			errs <- err
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.SetDebounce(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("version: \"9\"\n"), 0644); err != nil {
		t.Fatalf("failed to update catalog: %v", err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	calls := make(chan struct{}, 4)
	w, err := NewWatcher(path, func(*Catalog, error) { calls <- struct{}{} })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.SetDebounce(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	sibling := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(sibling, []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case <-calls:
		t.Error("watcher reacted to an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if !filepath.IsAbs(w.Path()) || filepath.Base(w.Path()) != filepath.Base(path) {
		t.Errorf("Path() = %q, want absolute path of %q", w.Path(), path)
	}
	w.Stop()
	w.Stop()
}
