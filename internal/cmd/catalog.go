package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/confplan/internal/catalog"
	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/planner"
	"github.com/Iron-Ham/confplan/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCatalogCmd())
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the priced items",
		Long: `List the venue rooms, add-ons and meals of the active catalog.

The active catalog is the file at catalog.path, or the built-in price list.
--filter takes a glob matched case-insensitively against item names.
--export prints the catalog as YAML, ready to be edited and used as
catalog.path.

Examples:
  confplan catalog --filter "*room*"
  confplan catalog --export > my-catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: runCatalog,
	}
	cmd.Flags().String("filter", "", "glob pattern matched against item names")
	cmd.Flags().Bool("export", false, "print the catalog as YAML")
	cmd.Flags().String("file", "", "catalog file to read instead of catalog.path")
	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := cfg.Catalog.Path
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		path = file
	}
	cat, err := loadCatalog(path)
	if err != nil {
		return err
	}

	pattern, _ := cmd.Flags().GetString("filter")
	filtered, err := cat.Filter(pattern)
	if err != nil {
		return fmt.Errorf("invalid --filter %q: %w", pattern, err)
	}

	out := cmd.OutOrStdout()
	if export, _ := cmd.Flags().GetBool("export"); export {
		data, err := filtered.Marshal()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	money, err := util.NewMoney(cfg.TUI.Currency, cfg.TUI.Locale)
	if err != nil {
		return err
	}
	writeCatalog(out, filtered, money)
	return nil
}

func writeCatalog(w io.Writer, cat *catalog.Catalog, money *util.Money) {
	fmt.Fprintf(w, "%s catalog (version %s)\n", cat.Name, cat.Version)
	if cat.Len() == 0 {
		fmt.Fprintln(w, "\nNo matching items.")
		return
	}

	for _, section := range planner.Sections() {
		entries := cat.Entries(section)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", section.Label())
		for _, e := range entries {
			line := "  " + util.FitColumn(e.Name, textNameWidth) + " " + util.AlignRight(money.Format(e.Cost), textUnitWidth)
			switch section {
			case planner.SectionVenue:
				limit := e.Cap
				if limit == 0 {
					limit = planner.DefaultVenueCap
				}
				line += fmt.Sprintf("  max %d", limit)
			case planner.SectionMeals:
				if e.FlatFee {
					line += "  flat fee"
				} else {
					line += "  per person"
				}
			}
			fmt.Fprintln(w, line)
		}
	}
}
