package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/Iron-Ham/confplan/internal/util"
)

// Column widths of the details table.
const (
	detailsTypeWidth     = 8
	detailsNameWidth     = 34
	detailsUnitWidth     = 12
	detailsQtyWidth      = 10
	detailsSubtotalWidth = 14
)

// RenderDetails renders the cost breakdown: one row per active item, then
// the section totals and the grand total.
func RenderDetails(summary planner.Summary, money *util.Money) string {
	if money == nil {
		money = util.DefaultMoney()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Cost Details"))
	b.WriteString("\n")

	header := util.FitColumn("Type", detailsTypeWidth) + " " +
		util.FitColumn("Item", detailsNameWidth) + " " +
		util.AlignRight("Unit cost", detailsUnitWidth) + " " +
		util.AlignRight("Qty", detailsQtyWidth) + " " +
		util.AlignRight("Subtotal", detailsSubtotalWidth)
	b.WriteString(styles.TableHeader.Render(header))
	b.WriteString("\n")

	if len(summary.Items) == 0 {
		b.WriteString(styles.Muted.Render("Nothing selected yet"))
		b.WriteString("\n")
	}
	for _, item := range summary.Items {
		b.WriteString(styles.TableCell.Render(detailsRow(item, money)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, section := range planner.Sections() {
		line := util.FitColumn(section.Label(), detailsTypeWidth+detailsNameWidth+1) + " " +
			util.AlignRight(money.Format(summary.Totals.Get(section)), detailsUnitWidth+detailsQtyWidth+detailsSubtotalWidth+2)
		b.WriteString(styles.TotalLine.Render(line))
		b.WriteString("\n")
	}
	grand := util.FitColumn("Grand total", detailsTypeWidth+detailsNameWidth+1) + " " +
		util.AlignRight(money.Format(summary.GrandTotal), detailsUnitWidth+detailsQtyWidth+detailsSubtotalWidth+2)
	b.WriteString(styles.GrandTotal.Render(grand))

	return styles.DetailsBox.Render(b.String())
}

func detailsRow(item planner.DisplayItem, money *util.Money) string {
	return util.FitColumn(item.Section.Label(), detailsTypeWidth) + " " +
		util.FitColumn(item.Name, detailsNameWidth) + " " +
		util.AlignRight(money.Format(item.UnitCost), detailsUnitWidth) + " " +
		util.AlignRight(QuantityLabel(item), detailsQtyWidth) + " " +
		util.AlignRight(money.Format(item.Subtotal), detailsSubtotalWidth)
}

// QuantityLabel describes how an item was counted: "x2" for quantities,
// "10 people" for per-person meals, "flat" for flat-fee meals.
func QuantityLabel(item planner.DisplayItem) string {
	switch {
	case item.PerPerson():
		if item.People == 1 {
			return "1 person"
		}
		return fmt.Sprintf("%d people", item.People)
	case item.Section == planner.SectionMeals:
		return "flat"
	default:
		return fmt.Sprintf("x%d", item.Quantity)
	}
}
