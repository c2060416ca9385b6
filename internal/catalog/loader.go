package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/confplan/internal/errors"
	"github.com/Iron-Ham/confplan/internal/planner"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		var catErr *errors.CatalogError
		if errors.As(err, &catErr) {
			return nil, catErr.WithPath(path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog from YAML bytes. A missing version
// is treated as the current format.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if c.Version == "" {
		c.Version = FormatVersion
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return data, nil
}

// Validate checks that the catalog is well-formed: a supported version, at
// least one entry, no negative costs or caps, and non-empty names that are
// unique within each section. Names are compared case-insensitively, as
// Index matches them.
func (c *Catalog) Validate() error {
	if c.Version != FormatVersion {
		return errors.NewCatalogError(
			fmt.Sprintf("version %q (supported: %s)", c.Version, FormatVersion),
			errors.ErrUnsupportedVersion,
		)
	}
	if c.Len() == 0 {
		return errors.NewCatalogError("nothing to plan", errors.ErrEmptyCatalog)
	}

	for _, section := range planner.Sections() {
		seen := make(map[string]bool)
		for i, e := range c.Entries(section) {
			if e.Name == "" {
				return errors.NewCatalogError(fmt.Sprintf("entry %d", i), errors.ErrMissingName).
					WithItem(string(section), "")
			}
			key := strings.ToLower(strings.TrimSpace(e.Name))
			if seen[key] {
				return errors.NewCatalogError("invalid entry", errors.ErrDuplicateName).
					WithItem(string(section), e.Name)
			}
			seen[key] = true

			if e.Cost < 0 {
				return errors.NewCatalogError(fmt.Sprintf("cost %v", e.Cost), errors.ErrNegativeCost).
					WithItem(string(section), e.Name)
			}
			if e.Cap < 0 {
				return errors.NewCatalogError(fmt.Sprintf("cap %d", e.Cap), errors.ErrNegativeCap).
					WithItem(string(section), e.Name)
			}
		}
	}
	return nil
}
