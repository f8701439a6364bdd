package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/catalog"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent catalog activities",
	Long: `Show recent catalog activities and logs.

Examples:
  maplens log                    # Show recent catalog logs
  maplens log --limit 20         # Show last 20 log entries
`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := catalog.Connect()
		if err != nil {
			fmt.Printf("❌ Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close(context.Background())

		logs, err := catalog.Logs(db, logLimit)
		if err != nil {
			fmt.Printf("❌ Error getting catalog logs: %v\n", err)
			os.Exit(1)
		}

		if len(logs) == 0 {
			fmt.Println("📋 No catalog logs found")
			return
		}

		showCatalogLogs(logs)
	},
}

func showCatalogLogs(logs []catalog.ActivityLog) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println("📋 Recent Catalog Activities")
	fmt.Println(strings.Repeat("=", 60))

	for i, entry := range logs {
		fmt.Printf("\n%d. ", i+1)

		switch entry.Level {
		case "INFO":
			blue.Print("ℹ️  ")
		case "WARN":
			yellow.Print("⚠️  ")
		case "ERROR":
			red.Print("❌ ")
		case "SUCCESS":
			green.Print("✅ ")
		default:
			fmt.Print("📝 ")
		}

		cyan.Printf("[%s] ", entry.Timestamp.Format("2006-01-02 15:04:05"))

		fmt.Printf("%s", entry.Message)

		if entry.User != "" {
			fmt.Printf(" (by %s)", entry.User)
		}

		fmt.Println()

		if entry.Details != "" {
			cyan.Printf("   📄 Details: %s\n", entry.Details)
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("📊 Showing %d recent log entries\n", len(logs))
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "l", 50, "Limit number of log entries to show")
}
