// Package planner holds the selection state of a conference plan and derives
// its costs.
//
// A Store owns three collections (venue rooms, add-ons and meals) plus the
// number of attendees. All mutations go through bounded transition methods
// that never fail: out-of-range adjustments, out-of-range indices and
// invalid people counts are absorbed and leave the store valid. Totals and
// the active item list are recomputed from current state on every call.
//
// A Store is not safe for concurrent use; it is meant to be owned by a
// single event loop.
package planner

import (
	"strconv"
	"strings"
)

// Store is the single source of truth for a plan's selections.
type Store struct {
	venue   []LineItem
	addons  []LineItem
	meals   []MealOption
	people  int
	pricing MealPricing
}

// Option configures a Store.
type Option func(*Store)

// WithMealPricing sets how scaling meals are priced. Unknown modes fall back
// to PricingLive.
func WithMealPricing(p MealPricing) Option {
	return func(s *Store) {
		if p == PricingLocked {
			s.pricing = PricingLocked
			return
		}
		s.pricing = PricingLive
	}
}

// WithNumberOfPeople sets the initial people count (clamped to at least 1).
func WithNumberOfPeople(n int) Option {
	return func(s *Store) {
		s.people = max(1, n)
	}
}

// NewStore creates a store from the given collections. The slices are copied
// and normalized: negative quantities become 0 and venue quantities are
// clamped to their cap.
func NewStore(venue, addons []LineItem, meals []MealOption, opts ...Option) *Store {
	s := &Store{
		people:  1,
		pricing: PricingLive,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(venue, addons, meals)
	return s
}

func (s *Store) load(venue, addons []LineItem, meals []MealOption) {
	s.venue = make([]LineItem, len(venue))
	for i, item := range venue {
		item.Quantity = min(max(0, item.Quantity), venueCap(item))
		s.venue[i] = item
	}

	s.addons = make([]LineItem, len(addons))
	for i, item := range addons {
		item.Quantity = max(0, item.Quantity)
		s.addons[i] = item
	}

	s.meals = make([]MealOption, len(meals))
	for i, meal := range meals {
		switch {
		case !meal.Selected || !meal.ScalesWithPeople:
			meal.LockedPeople = 0
		case meal.LockedPeople < 1:
			meal.LockedPeople = s.people
		}
		s.meals[i] = meal
	}
}

func venueCap(item LineItem) int {
	if item.Cap > 0 {
		return item.Cap
	}
	return DefaultVenueCap
}

// MealPricing returns the pricing mode of the store.
func (s *Store) MealPricing() MealPricing {
	return s.pricing
}

// Venue returns a copy of the venue collection.
func (s *Store) Venue() []LineItem {
	return append([]LineItem(nil), s.venue...)
}

// Addons returns a copy of the add-on collection.
func (s *Store) Addons() []LineItem {
	return append([]LineItem(nil), s.addons...)
}

// Meals returns a copy of the meal collection.
func (s *Store) Meals() []MealOption {
	return append([]MealOption(nil), s.meals...)
}

// Len returns the number of entries in a section.
func (s *Store) Len(section Section) int {
	switch section {
	case SectionVenue:
		return len(s.venue)
	case SectionAV:
		return len(s.addons)
	case SectionMeals:
		return len(s.meals)
	}
	return 0
}

// NumberOfPeople returns the current attendee count (always at least 1).
func (s *Store) NumberOfPeople() int {
	return s.people
}

// VenueLimit returns the maximum bookable quantity of venue item i, or 0 for
// an invalid index.
func (s *Store) VenueLimit(i int) int {
	if i < 0 || i >= len(s.venue) {
		return 0
	}
	return venueCap(s.venue[i])
}

// RemainingVenue returns how many more units of venue item i can be booked.
func (s *Store) RemainingVenue(i int) int {
	if i < 0 || i >= len(s.venue) {
		return 0
	}
	return venueCap(s.venue[i]) - s.venue[i].Quantity
}

// IncrementVenue books one more unit of venue item i unless it is at its cap.
func (s *Store) IncrementVenue(i int) {
	if i < 0 || i >= len(s.venue) {
		return
	}
	if s.venue[i].Quantity >= venueCap(s.venue[i]) {
		return
	}
	s.venue[i].Quantity++
}

// DecrementVenue releases one unit of venue item i unless none are booked.
func (s *Store) DecrementVenue(i int) {
	if i < 0 || i >= len(s.venue) {
		return
	}
	if s.venue[i].Quantity > 0 {
		s.venue[i].Quantity--
	}
}

// IncrementAddon adds one unit of add-on i. Add-ons have no upper bound.
func (s *Store) IncrementAddon(i int) {
	if i < 0 || i >= len(s.addons) {
		return
	}
	s.addons[i].Quantity++
}

// AddAddon adds n units of add-on i in one step. Non-positive n is a no-op.
func (s *Store) AddAddon(i, n int) {
	if i < 0 || i >= len(s.addons) || n <= 0 {
		return
	}
	s.addons[i].Quantity += n
}

// DecrementAddon removes one unit of add-on i, stopping at zero.
func (s *Store) DecrementAddon(i int) {
	if i < 0 || i >= len(s.addons) {
		return
	}
	if s.addons[i].Quantity > 0 {
		s.addons[i].Quantity--
	}
}

// ToggleMeal flips the selection of meal i, capturing the current people
// count for scaling meals.
func (s *Store) ToggleMeal(i int) {
	s.ToggleMealFor(i, s.people)
}

// ToggleMealFor flips the selection of meal i. When a scaling meal becomes
// selected it records people (at least 1) as its locked-in count.
func (s *Store) ToggleMealFor(i, people int) {
	if i < 0 || i >= len(s.meals) {
		return
	}
	meal := &s.meals[i]
	meal.Selected = !meal.Selected
	if meal.Selected && meal.ScalesWithPeople {
		meal.LockedPeople = max(1, people)
	} else {
		meal.LockedPeople = 0
	}
}

// SetNumberOfPeople sets the attendee count, clamped to at least 1.
func (s *Store) SetNumberOfPeople(n int) {
	s.people = max(1, n)
}

// SetNumberOfPeopleInput parses raw user input as the attendee count.
// Empty, non-numeric and non-positive input all yield 1. It returns the
// effective value.
func (s *Store) SetNumberOfPeopleInput(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 1
	}
	s.SetNumberOfPeople(n)
	return s.people
}

// Reset clears every quantity and selection and sets the people count to 1.
func (s *Store) Reset() {
	for i := range s.venue {
		s.venue[i].Quantity = 0
	}
	for i := range s.addons {
		s.addons[i].Quantity = 0
	}
	for i := range s.meals {
		s.meals[i].Selected = false
		s.meals[i].LockedPeople = 0
	}
	s.people = 1
}

// Reload replaces the collections with a new price list. Quantities and meal
// selections carry over to entries with the same name in the same section;
// venue quantities are clamped to the new caps.
func (s *Store) Reload(venue, addons []LineItem, meals []MealOption) {
	venueQty := quantitiesByName(s.venue)
	addonQty := quantitiesByName(s.addons)
	selected := make(map[string]MealOption, len(s.meals))
	for _, m := range s.meals {
		if m.Selected {
			selected[m.Name] = m
		}
	}

	nextVenue := make([]LineItem, len(venue))
	for i, item := range venue {
		item.Quantity = venueQty[item.Name]
		nextVenue[i] = item
	}
	nextAddons := make([]LineItem, len(addons))
	for i, item := range addons {
		item.Quantity = addonQty[item.Name]
		nextAddons[i] = item
	}
	nextMeals := make([]MealOption, len(meals))
	for i, meal := range meals {
		prev, ok := selected[meal.Name]
		meal.Selected = ok
		meal.LockedPeople = prev.LockedPeople
		nextMeals[i] = meal
	}

	s.load(nextVenue, nextAddons, nextMeals)
}

func quantitiesByName(items []LineItem) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item.Name] = item.Quantity
	}
	return out
}
