package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/confplan/internal/errors"
	"github.com/google/go-cmp/cmp"
)

const validCatalogYAML = `name: Riverside
version: "1"
venue:
  - name: Auditorium Hall
    cost: 500
    cap: 3
  - name: Boardroom
    cost: 120
addons:
  - name: Projector
    cost: 50
meals:
  - name: Lunch
    cost: 20
  - name: Cake
    cost: 80
    flat_fee: true
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Catalog{
		Name:    "Riverside",
		Version: "1",
		Venue:   []Entry{{Name: "Auditorium Hall", Cost: 500, Cap: 3}, {Name: "Boardroom", Cost: 120}},
		Addons:  []Entry{{Name: "Projector", Cost: 50}},
		Meals:   []Entry{{Name: "Lunch", Cost: 20}, {Name: "Cake", Cost: 80, FlatFee: true}},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "reading catalog file") {
		t.Errorf("error = %v, want reading catalog file", err)
	}
}

func TestLoad_InvalidAddsPath(t *testing.T) {
	path := writeCatalog(t, "version: \"1\"\nvenue:\n  - name: Hall\n    cost: -5\n")

	_, err := Load(path)
	var catErr *errors.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("Load() error = %v, want *CatalogError", err)
	}
	if catErr.Path != path {
		t.Errorf("Path = %q, want %q", catErr.Path, path)
	}
	if !errors.Is(err, errors.ErrNegativeCost) {
		t.Errorf("error = %v, want ErrNegativeCost", err)
	}
}

func TestParse_DefaultsVersion(t *testing.T) {
	c, err := Parse([]byte("addons:\n  - name: Mic\n    cost: 45\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Version != FormatVersion {
		t.Errorf("Version = %q, want %q", c.Version, FormatVersion)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("venue: [unterminated"))
	if err == nil || !strings.Contains(err.Error(), "parsing catalog file") {
		t.Errorf("Parse() error = %v, want parsing error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		want    error
	}{
		{
			name:    "unsupported version",
			catalog: Catalog{Version: "2", Venue: []Entry{{Name: "Hall"}}},
			want:    errors.ErrUnsupportedVersion,
		},
		{
			name:    "empty",
			catalog: Catalog{Version: "1"},
			want:    errors.ErrEmptyCatalog,
		},
		{
			name:    "missing name",
			catalog: Catalog{Version: "1", Meals: []Entry{{Cost: 3}}},
			want:    errors.ErrMissingName,
		},
		{
			name:    "duplicate within section",
			catalog: Catalog{Version: "1", Addons: []Entry{{Name: "Mic"}, {Name: "Mic"}}},
			want:    errors.ErrDuplicateName,
		},
		{
			name:    "duplicate differing only in case",
			catalog: Catalog{Version: "1", Addons: []Entry{{Name: "Projectors"}, {Name: "projectors "}}},
			want:    errors.ErrDuplicateName,
		},
		{
			name:    "negative cost",
			catalog: Catalog{Version: "1", Meals: []Entry{{Name: "Lunch", Cost: -1}}},
			want:    errors.ErrNegativeCost,
		},
		{
			name:    "negative cap",
			catalog: Catalog{Version: "1", Venue: []Entry{{Name: "Hall", Cap: -1}}},
			want:    errors.ErrNegativeCap,
		},
		{
			name:    "same name across sections is fine",
			catalog: Catalog{Version: "1", Venue: []Entry{{Name: "Lounge"}}, Addons: []Entry{{Name: "Lounge"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshalRoundTripsDefault(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
