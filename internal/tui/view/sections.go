package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/Iron-Ham/confplan/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Column widths of a section row.
const (
	NameColumnWidth = 34
	CostColumnWidth = 12
)

// SectionView renders the section tabs and the rows of one section.
type SectionView struct {
	money *util.Money
}

// NewSectionView creates a SectionView formatting amounts with money.
func NewSectionView(money *util.Money) *SectionView {
	if money == nil {
		money = util.DefaultMoney()
	}
	return &SectionView{money: money}
}

// RenderTabs renders one tab per section with its subtotal, highlighting
// the active one.
func (v *SectionView) RenderTabs(active planner.Section, totals planner.Totals) string {
	tabs := make([]string, 0, len(planner.Sections()))
	for i, section := range planner.Sections() {
		label := fmt.Sprintf("%d %s %s", i+1, section.Label(), v.money.Format(totals.Get(section)))
		if section == active {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderSection renders the rows of section with the cursor on row cursor.
func (v *SectionView) RenderSection(s *planner.Store, section planner.Section, cursor int) string {
	var rows []string
	switch section {
	case planner.SectionVenue:
		for i, item := range s.Venue() {
			rows = append(rows, v.renderLineItem(item, i == cursor, s.VenueLimit(i)))
		}
	case planner.SectionAV:
		for i, item := range s.Addons() {
			rows = append(rows, v.renderLineItem(item, i == cursor, 0))
		}
	case planner.SectionMeals:
		rows = append(rows, styles.Muted.Render(fmt.Sprintf("Number of people: %d", s.NumberOfPeople())), "")
		for i, meal := range s.Meals() {
			rows = append(rows, v.renderMeal(meal, i == cursor))
		}
	}

	if len(rows) == 0 {
		rows = append(rows, styles.Muted.Render("No items in this section"))
	}

	footer := styles.TotalLine.Render(fmt.Sprintf("%s total: %s", section.Label(), v.money.Format(s.SectionTotal(section))))
	rows = append(rows, "", footer)
	return styles.ContentBox.Render(strings.Join(rows, "\n"))
}

func cursorMark(selected bool) string {
	if selected {
		return styles.ItemCursor.Render("> ")
	}
	return "  "
}

// renderLineItem renders a quantity row. limit is the item's cap, 0 for
// uncapped add-ons.
func (v *SectionView) renderLineItem(item planner.LineItem, selected bool, limit int) string {
	atCap := limit > 0 && item.Quantity >= limit
	name := util.FitColumn(item.Name, NameColumnWidth)
	if selected {
		name = styles.ItemCursor.Render(name)
	}
	cost := util.AlignRight(v.money.Format(item.Cost), CostColumnWidth)

	minus := styles.HelpKey.Render("[-]")
	if item.Quantity == 0 {
		minus = styles.Muted.Render("[-]")
	}
	plus := styles.HelpKey.Render("[+]")
	if atCap {
		plus = styles.ItemDisabled.Render("[+]")
	}
	qty := styles.Quantity.Render(fmt.Sprintf("%d", item.Quantity))

	row := cursorMark(selected) + name + " " + cost + "  " + minus + qty + plus
	if item.Quantity > 0 {
		row += "  " + styles.ItemSelected.Render(v.money.Format(item.Subtotal()))
	}
	if atCap {
		row += "  " + styles.Muted.Render(fmt.Sprintf("(max %d)", limit))
	}
	return row
}

func (v *SectionView) renderMeal(meal planner.MealOption, selected bool) string {
	box := "[ ]"
	if meal.Selected {
		box = styles.ItemSelected.Render("[x]")
	}
	name := util.FitColumn(meal.Name, NameColumnWidth)
	switch {
	case selected:
		name = styles.ItemCursor.Render(name)
	case meal.Selected:
		name = styles.ItemSelected.Render(name)
	}

	price := v.money.Format(meal.Cost)
	if meal.ScalesWithPeople {
		price += "/person"
	}
	return cursorMark(selected) + box + " " + name + " " + util.AlignRight(price, CostColumnWidth+7)
}
