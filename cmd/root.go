package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkalanidhi/maplens/export"
	"github.com/gkalanidhi/maplens/mapping"
	"github.com/gkalanidhi/maplens/parser"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "maplens",
	Short: "Inspect Informatica PowerCenter mapping XML exports",
	Long: `maplens parses a PowerCenter mapping XML export into an object graph
and works with it from there: text summaries, JSON/YAML exports, lint
checks, revision diffs, data-flow diagrams and an optional PostgreSQL
catalog for team-wide history.

Examples:

  maplens init
  maplens inspect sample_mapping.xml
  maplens lint sample_mapping.xml
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("output.no_color") {
			color.NoColor = true
		}
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./maplens.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	viper.BindPFlag("output.no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(healthCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("maplens")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// loadMapping reads a mapping from either a PowerCenter XML export or a
// previously written JSON export, dispatching on the file extension.
func loadMapping(path string) (*mapping.Mapping, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return export.Load(path)
	}
	return parser.Parse(path)
}
