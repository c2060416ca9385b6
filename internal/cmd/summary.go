package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/errors"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/tui/view"
	"github.com/Iron-Ham/confplan/internal/util"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

func init() {
	rootCmd.AddCommand(newSummaryCmd())
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Price a plan from the command line",
		Long: `Build a plan from flags and print its cost breakdown.

Items are named as in the catalog (case-insensitive). Quantities default
to 1. Venue quantities stop at each room's cap.

Examples:
  # Two conference rooms, one projector, lunch for 40 people
  confplan summary --venue "Conference Room (Capacity:15)=2" \
    --addon Projectors --meal Lunch --people 40

  # Machine-readable output
  confplan summary --venue "Auditorium Hall (Capacity:200)" --format json

The exit code is 1 when --fail-over-budget is set and the plan exceeds
budget.limit, or --limit when given.`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}

	cmd.Flags().StringArray("venue", nil, "venue room to book as name[=quantity] (repeatable)")
	cmd.Flags().StringArray("addon", nil, "add-on to include as name[=quantity] (repeatable)")
	cmd.Flags().StringArray("meal", nil, "meal to select by name (repeatable)")
	cmd.Flags().Int("people", 0, "number of attendees (default from plan.number_of_people)")
	cmd.Flags().Float64("limit", 0, "budget limit for this run (default from budget.limit, 0 disables)")
	cmd.Flags().String("format", FormatText, "output format: text or json")
	cmd.Flags().Bool("fail-over-budget", false, "exit with status 1 when the plan is over budget")
	return cmd
}

// SummaryOutput is the JSON form of a priced plan.
type SummaryOutput struct {
	Catalog  string `json:"catalog"`
	Currency string `json:"currency"`
	planner.Summary
	MealPricing  string        `json:"mealPricing"`
	Budget       *BudgetOutput `json:"budget,omitempty"`
	CappedVenues []Capped      `json:"cappedVenues,omitempty"`
}

// BudgetOutput is the budget section of SummaryOutput.
type BudgetOutput struct {
	Limit            float64 `json:"limit,omitempty"`
	WarningThreshold float64 `json:"warningThreshold,omitempty"`
	Remaining        float64 `json:"remaining,omitempty"`
	Status           string  `json:"status"`
}

// Capped reports a venue request reduced to the room's cap.
type Capped struct {
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Booked    int    `json:"booked"`
}

// overBudgetError signals an over-budget plan after the output was printed.
type overBudgetError struct{}

func (e *overBudgetError) Error() string {
	return "plan is over budget"
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid --format %q: must be %s or %s", format, FormatText, FormatJSON)
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Close() }()

	store := env.newStore()
	if cmd.Flags().Changed("people") {
		people, _ := cmd.Flags().GetInt("people")
		store.SetNumberOfPeople(people)
	}

	venues, _ := cmd.Flags().GetStringArray("venue")
	addons, _ := cmd.Flags().GetStringArray("addon")
	meals, _ := cmd.Flags().GetStringArray("meal")
	capped, err := applySelections(env.catalog, store, venues, addons, meals)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	limits := budget.Config{Limit: env.cfg.Budget.Limit, WarningThreshold: env.cfg.Budget.WarningThreshold}
	mgr := budget.NewManagerFromConfig(env.cfg, store, budget.Callbacks{
		OnBudgetWarning: func(total float64) {
			fmt.Fprintf(stderr, "Warning: grand total %s reached the budget warning threshold %s\n",
				env.money.Format(total), env.money.Format(limits.WarningThreshold))
		},
		OnBudgetLimit: func(total float64) {
			fmt.Fprintf(stderr, "Warning: grand total %s exceeds the budget limit %s\n",
				env.money.Format(total), env.money.Format(limits.Limit))
		},
	}, env.logger)
	if cmd.Flags().Changed("limit") {
		limit, _ := cmd.Flags().GetFloat64("limit")
		if limit < 0 {
			return fmt.Errorf("invalid --limit %v: must not be negative", limit)
		}
		limits.Limit = limit
		mgr.UpdateConfig(limits)
	}
	status := mgr.Check()

	for _, c := range capped {
		fmt.Fprintf(stderr, "Note: %s booked %d of %d requested (room cap)\n", c.Name, c.Booked, c.Requested)
	}

	env.logger.Info("summary computed",
		"grand_total", store.GrandTotal(),
		"items", len(store.Breakdown().Items),
		"budget_status", string(status),
	)

	out := cmd.OutOrStdout()
	if format == FormatJSON {
		output := SummaryOutput{
			Catalog:      env.catalog.Name,
			Currency:     env.money.Symbol(),
			Summary:      store.Breakdown(),
			MealPricing:  string(store.MealPricing()),
			CappedVenues: capped,
		}
		if mgr.Enabled() {
			report := mgr.Report()
			output.Budget = &BudgetOutput{
				Limit:            report.Limit,
				WarningThreshold: limits.WarningThreshold,
				Remaining:        report.Remaining,
				Status:           string(report.Status),
			}
		}
		if err := writeJSON(out, output); err != nil {
			return err
		}
	} else {
		writeText(out, env.catalog.Name, store.Breakdown(), env.money)
	}

	failOver, _ := cmd.Flags().GetBool("fail-over-budget")
	if failOver && status == budget.StatusOverLimit {
		return &overBudgetError{}
	}
	return nil
}

// applySelections books the named items on store. Venue requests beyond a
// room's cap are booked up to the cap and reported.
func applySelections(cat *catalog.Catalog, store *planner.Store, venues, addons, meals []string) ([]Capped, error) {
	var capped []Capped

	for _, arg := range venues {
		name, qty, err := parseItemArg(arg)
		if err != nil {
			return nil, err
		}
		i, err := cat.Index(planner.SectionVenue, name)
		if err != nil {
			return nil, err
		}
		before := store.Venue()[i].Quantity
		for range min(qty, store.RemainingVenue(i)) {
			store.IncrementVenue(i)
		}
		if booked := store.Venue()[i].Quantity - before; booked < qty {
			capped = append(capped, Capped{Name: store.Venue()[i].Name, Requested: qty, Booked: booked})
		}
	}

	for _, arg := range addons {
		name, qty, err := parseItemArg(arg)
		if err != nil {
			return nil, err
		}
		i, err := cat.Index(planner.SectionAV, name)
		if err != nil {
			return nil, err
		}
		store.AddAddon(i, qty)
	}

	for _, name := range meals {
		i, err := cat.Index(planner.SectionMeals, name)
		if err != nil {
			return nil, err
		}
		if !store.Meals()[i].Selected {
			store.ToggleMeal(i)
		}
	}

	return capped, nil
}

// parseItemArg splits "name=quantity". A missing quantity means 1.
func parseItemArg(arg string) (string, int, error) {
	name, qtyText, found := cutLast(arg, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, errors.Join(errors.ErrInvalidInput, fmt.Errorf("missing item name in %q", arg))
	}
	if !found {
		return name, 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyText))
	if err != nil || qty < 0 {
		return "", 0, errors.Join(errors.ErrInvalidInput, fmt.Errorf("invalid quantity in %q", arg))
	}
	return name, qty, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

func writeJSON(w io.Writer, output SummaryOutput) error {
	if output.Items == nil {
		output.Items = []planner.DisplayItem{}
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Column widths of the text summary.
const (
	textTypeWidth = 8
	textNameWidth = 34
	textUnitWidth = 12
	textQtyWidth  = 10
	textSubWidth  = 14
)

func writeText(w io.Writer, catalogName string, summary planner.Summary, money *util.Money) {
	fmt.Fprintf(w, "Conference plan (%s catalog, %d people)\n\n", catalogName, summary.NumberOfPeople)

	if len(summary.Items) == 0 {
		fmt.Fprintln(w, "Nothing selected.")
	} else {
		fmt.Fprintln(w, util.FitColumn("Type", textTypeWidth)+" "+
			util.FitColumn("Item", textNameWidth)+" "+
			util.AlignRight("Unit cost", textUnitWidth)+" "+
			util.AlignRight("Qty", textQtyWidth)+" "+
			util.AlignRight("Subtotal", textSubWidth))
		for _, item := range summary.Items {
			fmt.Fprintln(w, util.FitColumn(item.Section.Label(), textTypeWidth)+" "+
				util.FitColumn(item.Name, textNameWidth)+" "+
				util.AlignRight(money.Format(item.UnitCost), textUnitWidth)+" "+
				util.AlignRight(view.QuantityLabel(item), textQtyWidth)+" "+
				util.AlignRight(money.Format(item.Subtotal), textSubWidth))
		}
	}
	fmt.Fprintln(w)

	labelWidth := textTypeWidth + textNameWidth + 1
	amountWidth := textUnitWidth + textQtyWidth + textSubWidth + 2
	for _, section := range planner.Sections() {
		fmt.Fprintln(w, util.FitColumn(section.Label()+" total", labelWidth)+" "+
			util.AlignRight(money.Format(summary.Totals.Get(section)), amountWidth))
	}
	fmt.Fprintln(w, util.FitColumn("Grand total", labelWidth)+" "+
		util.AlignRight(money.Format(summary.GrandTotal), amountWidth))
}
