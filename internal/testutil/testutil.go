// Package testutil provides testing utilities for confplan tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/spf13/viper"
)

// IsolateConfig points the config directory at a fresh temporary directory
// and resets viper to the registered defaults with file logging turned
// off. Returns the config directory. Viper is reset again when the test
// completes.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	viper.Reset()
	config.SetDefaults()
	viper.Set("logging.enabled", false)
	t.Cleanup(viper.Reset)

	return filepath.Join(home, "confplan")
}

// WriteFile writes content to name inside dir, creating dir if needed, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// SmallCatalog is a catalog file with one entry per section, cheap enough
// to total by hand.
const SmallCatalog = `name: Small
version: "1"
venue:
  - name: Hall
    cost: 1000
    cap: 2
addons:
  - name: Mic
    cost: 10
meals:
  - name: Coffee
    cost: 5
  - name: Cake
    cost: 40
    flat_fee: true
`

// WriteCatalog writes SmallCatalog or the given content to catalog.yaml in
// a temporary directory and returns its path.
func WriteCatalog(t *testing.T, content string) string {
	t.Helper()

	if content == "" {
		content = SmallCatalog
	}
	return WriteFile(t, t.TempDir(), "catalog.yaml", content)
}
