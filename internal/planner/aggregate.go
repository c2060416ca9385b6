package planner

import "iter"

// mealPeople returns the multiplier a selected meal is priced with.
// Meals that do not scale are flat fees.
func (s *Store) mealPeople(m MealOption) int {
	if !m.ScalesWithPeople {
		return 1
	}
	if s.pricing == PricingLocked && m.LockedPeople > 0 {
		return m.LockedPeople
	}
	return s.people
}

// SectionTotal returns the subtotal of one section. Unknown sections total 0.
func (s *Store) SectionTotal(section Section) float64 {
	var total float64
	switch section {
	case SectionVenue:
		for _, item := range s.venue {
			total += item.Subtotal()
		}
	case SectionAV:
		for _, item := range s.addons {
			total += item.Subtotal()
		}
	case SectionMeals:
		for _, meal := range s.meals {
			if meal.Selected {
				total += meal.Cost * float64(s.mealPeople(meal))
			}
		}
	}
	return total
}

// Totals returns the subtotal of every section.
func (s *Store) Totals() Totals {
	return Totals{
		Venue: s.SectionTotal(SectionVenue),
		AV:    s.SectionTotal(SectionAV),
		Meals: s.SectionTotal(SectionMeals),
	}
}

// GrandTotal returns the sum of the three section totals.
func (s *Store) GrandTotal() float64 {
	return s.Totals().Sum()
}

// Selections yields the active entries of the plan in a fixed order:
// booked venue rooms, then add-ons with a positive quantity, then selected
// meals, each in collection order. Add-ons are deduplicated by name (the
// first occurrence wins); venue rooms and meals are not.
//
// The sequence reads the store when iterated, so it can be ranged over
// again after further mutations.
func (s *Store) Selections() iter.Seq[Selection] {
	return func(yield func(Selection) bool) {
		for i, item := range s.venue {
			if item.Quantity > 0 {
				if !yield(VenueSelection{Index: i, Item: item}) {
					return
				}
			}
		}

		seen := make(map[string]struct{})
		for i, item := range s.addons {
			if item.Quantity <= 0 {
				continue
			}
			if _, dup := seen[item.Name]; dup {
				continue
			}
			seen[item.Name] = struct{}{}
			if !yield(AddonSelection{Index: i, Item: item}) {
				return
			}
		}

		for i, meal := range s.meals {
			if meal.Selected {
				if !yield(MealSelection{Index: i, Meal: meal, People: s.mealPeople(meal)}) {
					return
				}
			}
		}
	}
}

// ActiveItems yields the display projection of Selections.
func (s *Store) ActiveItems() iter.Seq[DisplayItem] {
	return func(yield func(DisplayItem) bool) {
		for sel := range s.Selections() {
			if !yield(sel.Display()) {
				return
			}
		}
	}
}

// Breakdown captures totals and active items in one snapshot.
func (s *Store) Breakdown() Summary {
	totals := s.Totals()
	items := make([]DisplayItem, 0)
	for item := range s.ActiveItems() {
		items = append(items, item)
	}
	return Summary{
		Totals:         totals,
		Items:          items,
		NumberOfPeople: s.people,
		GrandTotal:     totals.Sum(),
	}
}
