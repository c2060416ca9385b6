package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/confplan/internal/budget"
	"github.com/Iron-Ham/confplan/internal/event"
	"github.com/Iron-Ham/confplan/internal/tui"
	"github.com/Iron-Ham/confplan/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// MinTerminalWidth is the narrowest terminal the planner lays out cleanly in.
const MinTerminalWidth = 80

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive planner",
	Long: `Open the interactive planner in the terminal.

Book venue rooms, add AV equipment and pick meals; subtotals and the grand
total update as you go. When catalog.path points at a YAML file and
catalog.watch is on, edits to that file are picked up while the planner runs.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().Bool("details", false, "open the cost breakdown on start")
}

func runStart(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("start needs an interactive terminal; use 'confplan summary' instead")
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Close() }()

	if termWidth, _, err := term.GetSize(fd); err == nil && termWidth < MinTerminalWidth {
		env.logger.Warn("terminal narrower than layout", "width", termWidth, "min_width", MinTerminalWidth)
	}

	styles.SetActiveTheme(styles.ThemeName(env.cfg.TUI.Theme))

	showDetails := env.cfg.TUI.ShowDetails
	if cmd.Flags().Changed("details") {
		showDetails, _ = cmd.Flags().GetBool("details")
	}

	store := env.newStore()
	mgr := budget.NewManagerFromConfig(env.cfg, store, budget.Callbacks{}, env.logger)

	bus := event.NewBus(env.logger)
	changes := 0
	bus.Subscribe(event.TypePlanChanged, func(event.Event) { changes++ })

	app := tui.New(tui.Options{
		Catalog:     env.catalog,
		Store:       store,
		Budget:      mgr,
		Logger:      env.logger,
		Money:       env.money,
		Events:      bus,
		ShowDetails: showDetails,
	})
	if env.cfg.Catalog.Path != "" && env.cfg.Catalog.Watch {
		app.WatchCatalog(env.cfg.Catalog.Path, env.cfg.Catalog.Debounce())
	}

	env.logger.Info("planner started", "catalog", env.catalog.Name)

	// Launch TUI
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	env.logger.Info("planner closed", "grand_total", store.GrandTotal(), "changes", changes)
	return nil
}
