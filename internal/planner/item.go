package planner

// Section identifies one of the three cost domains of a plan.
type Section string

const (
	SectionVenue Section = "venue"
	SectionAV    Section = "av"
	SectionMeals Section = "meals"
)

// Sections returns all sections in display order.
func Sections() []Section {
	return []Section{SectionVenue, SectionAV, SectionMeals}
}

// Label returns the human-readable heading for the section.
func (s Section) Label() string {
	switch s {
	case SectionVenue:
		return "Venue"
	case SectionAV:
		return "Add-ons"
	case SectionMeals:
		return "Meals"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionVenue, SectionAV, SectionMeals:
		return true
	}
	return false
}

// DefaultVenueCap is the maximum quantity of a venue room that carries no
// explicit cap of its own.
const DefaultVenueCap = 10

// LineItem is a venue room or an add-on with a selectable quantity.
type LineItem struct {
	Name     string
	Cost     float64
	Quantity int
	// Cap is the maximum quantity for venue rooms. Zero means DefaultVenueCap.
	// Add-ons ignore it.
	Cap int
}

// Subtotal returns cost × quantity.
func (li LineItem) Subtotal() float64 {
	return li.Cost * float64(li.Quantity)
}

// MealOption is a meal that is either selected or not.
type MealOption struct {
	Name             string
	Cost             float64
	Selected         bool
	ScalesWithPeople bool
	// LockedPeople is the people count captured when the meal was selected.
	// Zero while the meal is deselected or does not scale.
	LockedPeople int
}

// MealPricing selects which people count prices a scaling meal.
type MealPricing string

const (
	// PricingLive prices scaling meals with the current people count.
	PricingLive MealPricing = "live"
	// PricingLocked prices scaling meals with the count captured at selection.
	PricingLocked MealPricing = "locked"
)

// ValidMealPricing returns the accepted pricing mode names.
func ValidMealPricing() []string {
	return []string{string(PricingLive), string(PricingLocked)}
}

// Totals holds the per-section subtotals of a plan.
type Totals struct {
	Venue float64 `json:"venue"`
	AV    float64 `json:"av"`
	Meals float64 `json:"meals"`
}

// Get returns the subtotal of a single section.
func (t Totals) Get(s Section) float64 {
	switch s {
	case SectionVenue:
		return t.Venue
	case SectionAV:
		return t.AV
	case SectionMeals:
		return t.Meals
	}
	return 0
}

// Sum returns the grand total.
func (t Totals) Sum() float64 {
	return t.Venue + t.AV + t.Meals
}

// DisplayItem is the render-ready projection of an active selection.
type DisplayItem struct {
	Section  Section `json:"type"`
	Name     string  `json:"name"`
	UnitCost float64 `json:"cost"`
	// Quantity is set for venue and add-on items.
	Quantity int `json:"quantity,omitempty"`
	// People is set for meals that scale with the number of people.
	People   int     `json:"numberOfPeople,omitempty"`
	Subtotal float64 `json:"subtotal"`
}

// PerPerson reports whether the item is priced per attendee.
func (d DisplayItem) PerPerson() bool {
	return d.People > 0
}

// Summary is everything the presentation layer needs to draw a breakdown.
type Summary struct {
	Totals         Totals        `json:"totals"`
	Items          []DisplayItem `json:"items"`
	NumberOfPeople int           `json:"numberOfPeople"`
	GrandTotal     float64       `json:"grandTotal"`
}
