package planner

// Selection is an active entry of a plan. It is implemented only by
// VenueSelection, AddonSelection and MealSelection; each variant carries the
// fields that are meaningful for its section and projects itself into a
// DisplayItem.
type Selection interface {
	Section() Section
	Display() DisplayItem
	selection()
}

// VenueSelection is a venue room booked at least once.
type VenueSelection struct {
	Index int
	Item  LineItem
}

func (VenueSelection) Section() Section { return SectionVenue }
func (VenueSelection) selection()       {}

func (v VenueSelection) Display() DisplayItem {
	return DisplayItem{
		Section:  SectionVenue,
		Name:     v.Item.Name,
		UnitCost: v.Item.Cost,
		Quantity: v.Item.Quantity,
		Subtotal: v.Item.Subtotal(),
	}
}

// AddonSelection is an add-on with a positive quantity.
type AddonSelection struct {
	Index int
	Item  LineItem
}

func (AddonSelection) Section() Section { return SectionAV }
func (AddonSelection) selection()       {}

func (a AddonSelection) Display() DisplayItem {
	return DisplayItem{
		Section:  SectionAV,
		Name:     a.Item.Name,
		UnitCost: a.Item.Cost,
		Quantity: a.Item.Quantity,
		Subtotal: a.Item.Subtotal(),
	}
}

// MealSelection is a selected meal together with the multiplier it is
// priced with. People is 1 for flat-fee meals.
type MealSelection struct {
	Index  int
	Meal   MealOption
	People int
}

func (MealSelection) Section() Section { return SectionMeals }
func (MealSelection) selection()       {}

func (m MealSelection) Display() DisplayItem {
	d := DisplayItem{
		Section:  SectionMeals,
		Name:     m.Meal.Name,
		UnitCost: m.Meal.Cost,
		Subtotal: m.Meal.Cost * float64(m.People),
	}
	if m.Meal.ScalesWithPeople {
		d.People = m.People
	} else {
		d.Quantity = 1
	}
	return d
}
