package view

import (
	"fmt"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/Iron-Ham/confplan/internal/util"
)

// StatusBarState holds the state needed to render the status bar.
type StatusBarState struct {
	Report         budget.Report
	BudgetEnabled  bool
	NumberOfPeople int
	// Flash is a transient message; FlashIsError picks its style.
	Flash        string
	FlashIsError bool
}

// RenderStatusBar renders the grand total, the people count, the budget
// badge when a budget is configured, and any flash message.
func RenderStatusBar(state StatusBarState, money *util.Money) string {
	if money == nil {
		money = util.DefaultMoney()
	}

	out := styles.GrandTotal.Render("Total " + money.Format(state.Report.GrandTotal))
	out += styles.Muted.Render(fmt.Sprintf("  ·  %d people", state.NumberOfPeople))

	if state.BudgetEnabled {
		out += "  " + BudgetBadge(state.Report, money)
	}

	if state.Flash != "" {
		if state.FlashIsError {
			out += "  " + styles.ErrorMsg.Render(state.Flash)
		} else {
			out += "  " + styles.SuccessMsg.Render(state.Flash)
		}
	}
	return out
}

// BudgetBadge renders the budget status with the remaining amount.
func BudgetBadge(r budget.Report, money *util.Money) string {
	switch r.Status {
	case budget.StatusOverLimit:
		return styles.BudgetOver.Render(fmt.Sprintf("OVER BUDGET by %s", money.Format(-r.Remaining)))
	case budget.StatusWarning:
		if r.Limit <= 0 {
			return styles.BudgetWarning.Render("near budget")
		}
		return styles.BudgetWarning.Render(fmt.Sprintf("%.0f%% of budget", r.UsedPercent))
	default:
		if r.Limit <= 0 {
			return styles.BudgetOK.Render("within budget")
		}
		return styles.BudgetOK.Render(fmt.Sprintf("%s left", money.Format(r.Remaining)))
	}
}
