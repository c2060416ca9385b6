package cmd

import (
	"strings"

	configcmd "github.com/Iron-Ham/confplan/internal/cmd/config"
	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "confplan",
	Short: "Conference expense planner",
	Long: `confplan plans the cost of a conference: book venue rooms, add AV
equipment, pick meals for the number of attendees and see the subtotals
and grand total as you go.

Run 'confplan start' for the interactive planner or 'confplan summary'
to price a plan from the command line.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/confplan/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	configcmd.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CONFPLAN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CONFPLAN_BUDGET_LIMIT for budget.limit
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
