// Package catalog provides the price list a plan is built from: the venue
// rooms, add-on equipment and meals on offer, with their unit costs.
package catalog

import (
	"strings"

	"github.com/Iron-Ham/confplan/internal/errors"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/gobwas/glob"
)

// FormatVersion is the catalog file format understood by this build.
const FormatVersion = "1"

// Entry is a single priced offering.
type Entry struct {
	Name string  `yaml:"name"`
	Cost float64 `yaml:"cost"`
	// Cap limits the bookable quantity of a venue room (0 = default cap).
	// Caps are never inferred from the name.
	Cap int `yaml:"cap,omitempty"`
	// FlatFee marks a meal charged once instead of per person.
	FlatFee bool `yaml:"flat_fee,omitempty"`
}

// Catalog is the full set of offerings, grouped by section.
type Catalog struct {
	Name    string  `yaml:"name,omitempty"`
	Version string  `yaml:"version"`
	Venue   []Entry `yaml:"venue"`
	Addons  []Entry `yaml:"addons"`
	Meals   []Entry `yaml:"meals"`
}

// Default returns the built-in price list.
func Default() *Catalog {
	return &Catalog{
		Name:    "Default",
		Version: FormatVersion,
		Venue: []Entry{
			{Name: "Conference Room (Capacity:15)", Cost: 3500},
			{Name: "Auditorium Hall (Capacity:200)", Cost: 5500, Cap: 3},
			{Name: "Presentation Room (Capacity:50)", Cost: 700},
			{Name: "Large Meeting Room (Capacity:10)", Cost: 900},
			{Name: "Small Meeting Room (Capacity:5)", Cost: 1100},
		},
		Addons: []Entry{
			{Name: "Projectors", Cost: 200},
			{Name: "Speaker", Cost: 35},
			{Name: "Microphones", Cost: 45},
			{Name: "Whiteboards", Cost: 80},
			{Name: "Signage", Cost: 80},
		},
		Meals: []Entry{
			{Name: "Breakfast", Cost: 50},
			{Name: "High Tea", Cost: 25},
			{Name: "Lunch", Cost: 65},
			{Name: "Dinner", Cost: 70},
		},
	}
}

// Entries returns the entries of one section.
func (c *Catalog) Entries(section planner.Section) []Entry {
	switch section {
	case planner.SectionVenue:
		return c.Venue
	case planner.SectionAV:
		return c.Addons
	case planner.SectionMeals:
		return c.Meals
	}
	return nil
}

// Len returns the total number of entries across all sections.
func (c *Catalog) Len() int {
	return len(c.Venue) + len(c.Addons) + len(c.Meals)
}

// Collections converts the catalog into planner collections with nothing
// selected.
func (c *Catalog) Collections() (venue, addons []planner.LineItem, meals []planner.MealOption) {
	venue = make([]planner.LineItem, len(c.Venue))
	for i, e := range c.Venue {
		venue[i] = planner.LineItem{Name: e.Name, Cost: e.Cost, Cap: e.Cap}
	}
	addons = make([]planner.LineItem, len(c.Addons))
	for i, e := range c.Addons {
		addons[i] = planner.LineItem{Name: e.Name, Cost: e.Cost}
	}
	meals = make([]planner.MealOption, len(c.Meals))
	for i, e := range c.Meals {
		meals[i] = planner.MealOption{Name: e.Name, Cost: e.Cost, ScalesWithPeople: !e.FlatFee}
	}
	return venue, addons, meals
}

// NewStore builds an empty plan over this catalog.
func (c *Catalog) NewStore(opts ...planner.Option) *planner.Store {
	venue, addons, meals := c.Collections()
	return planner.NewStore(venue, addons, meals, opts...)
}

// Apply reprices an existing plan with this catalog, keeping selections of
// entries that still exist.
func (c *Catalog) Apply(s *planner.Store) {
	venue, addons, meals := c.Collections()
	s.Reload(venue, addons, meals)
}

// Index returns the position of the named entry within a section. Names are
// matched case-insensitively; the first match wins.
func (c *Catalog) Index(section planner.Section, name string) (int, error) {
	for i, e := range c.Entries(section) {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return -1, errors.NewNotFoundError(string(section), name)
}

// Filter returns a copy of the catalog holding only entries whose name
// matches the glob pattern. An empty pattern matches everything.
func (c *Catalog) Filter(pattern string) (*Catalog, error) {
	out := &Catalog{Name: c.Name, Version: c.Version}
	if pattern == "" {
		out.Venue = append([]Entry(nil), c.Venue...)
		out.Addons = append([]Entry(nil), c.Addons...)
		out.Meals = append([]Entry(nil), c.Meals...)
		return out, nil
	}

	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, errors.Join(errors.ErrInvalidInput, err)
	}
	match := func(entries []Entry) []Entry {
		var kept []Entry
		for _, e := range entries {
			if g.Match(strings.ToLower(e.Name)) {
				kept = append(kept, e)
			}
		}
		return kept
	}
	out.Venue = match(c.Venue)
	out.Addons = match(c.Addons)
	out.Meals = match(c.Meals)
	return out, nil
}
