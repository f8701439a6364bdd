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

var (
	historyLimit    int
	historyName     string
	historyDetailed bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show catalog registration history",
	Long: `Show catalog registration history with timestamps, counts and user information.

Examples:
  maplens history                    # Show all catalog history
  maplens history --limit 10         # Show last 10 registrations
  maplens history --name customer    # Show registrations matching a mapping name
  maplens history --detailed         # Show detailed information
`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := catalog.Connect()
		if err != nil {
			fmt.Printf("❌ Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close(context.Background())

		history, err := catalog.History(db, historyLimit, historyName)
		if err != nil {
			fmt.Printf("❌ Error getting catalog history: %v\n", err)
			os.Exit(1)
		}

		if len(history) == 0 {
			fmt.Println("📋 No catalog history found")
			return
		}

		showCatalogHistory(history, historyDetailed)
	},
}

func showCatalogHistory(history []catalog.Record, detailed bool) {
	fmt.Println("📋 Catalog History")
	fmt.Println(strings.Repeat("=", 60))

	if detailed {
		showDetailedHistory(history)
	} else {
		showSummaryHistory(history)
	}
}

func showDetailedHistory(history []catalog.Record) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)
	cyan := color.New(color.FgCyan)

	for i, record := range history {
		fmt.Printf("\n%d. ", i+1)

		if record.Status == "active" {
			green.Print("✅ ")
		} else {
			yellow.Print("🕒 ")
		}

		blue.Printf("%s\n", record.MappingName)

		cyan.Printf("   📅 Registered: %s\n", record.RegisteredAt.Format("2006-01-02 15:04:05"))

		if record.RegisteredBy != "" {
			cyan.Printf("   👤 User: %s\n", record.RegisteredBy)
		}

		if record.Folder != "" {
			cyan.Printf("   📁 Folder: %s\n", record.Folder)
		}

		cyan.Printf("   📄 Source: %s\n", record.SourceFile)

		if record.Checksum != "" {
			cyan.Printf("   🔍 Checksum: %s\n", record.Checksum[:8]+"...")
		}

		cyan.Printf("   📊 %d transformations, %d connections, %d sources, %d targets\n",
			record.TransformationCount, record.ConnectionCount,
			record.SourceCount, record.TargetCount)
	}
}

func showSummaryHistory(history []catalog.Record) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)

	fmt.Printf("%-4s %-8s %-25s %6s %6s %-10s %s\n", "ID", "Status", "Mapping", "Trans", "Conns", "User", "Date")
	fmt.Println(strings.Repeat("-", 80))

	for i, record := range history {
		var status string
		if record.Status == "active" {
			status = green.Sprint("✅")
		} else {
			status = yellow.Sprint("🕒")
		}

		user := record.RegisteredBy
		if user == "" {
			user = "N/A"
		}

		mappingName := record.MappingName
		if len(mappingName) > 23 {
			mappingName = mappingName[:20] + "..."
		}

		fmt.Printf("%-4d %-8s %-25s %6d %6d %-10s %s\n",
			i+1,
			status,
			blue.Sprint(mappingName),
			record.TransformationCount,
			record.ConnectionCount,
			user,
			record.RegisteredAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println(strings.Repeat("-", 80))

	activeCount := 0
	supersededCount := 0
	for _, record := range history {
		if record.Status == "active" {
			activeCount++
		} else {
			supersededCount++
		}
	}

	fmt.Printf("📊 Summary: %d records, %d active, %d superseded\n",
		len(history), activeCount, supersededCount)
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Limit number of records to show (0 = all)")
	historyCmd.Flags().StringVar(&historyName, "name", "", "Filter by mapping name")
	historyCmd.Flags().BoolVarP(&historyDetailed, "detailed", "d", false, "Show detailed information")
}
