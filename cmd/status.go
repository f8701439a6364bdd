package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status <directory>",
	Short: "Compare mapping files on disk against the catalog",
	Long: `Scan a directory for mapping XML files and classify each one against
the catalog: registered (checksum matches the active registration),
stale (file changed since registration), or unregistered.

Examples:
  maplens status ./exports
  maplens status .`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := findMappingFiles(args[0])
		if err != nil {
			fmt.Printf("❌ Error scanning directory: %v\n", err)
			os.Exit(1)
		}

		if len(files) == 0 {
			fmt.Println("📋 No mapping XML files found")
			return
		}

		statuses, err := catalog.Status(files)
		if err != nil {
			fmt.Printf("❌ Error checking catalog status: %v\n", err)
			os.Exit(1)
		}

		var registered, stale, unregistered, unreadable []catalog.FileStatus
		for _, s := range statuses {
			switch s.State {
			case catalog.FileRegistered:
				registered = append(registered, s)
			case catalog.FileStale:
				stale = append(stale, s)
			case catalog.FileUnreadable:
				unreadable = append(unreadable, s)
			default:
				unregistered = append(unregistered, s)
			}
		}

		if len(registered) > 0 {
			fmt.Println("✅ Registered mappings:")
			for _, s := range registered {
				fmt.Printf("   - %s (%s)\n", s.Path, s.MappingName)
			}
		}

		if len(stale) > 0 {
			fmt.Println("⚠️  Stale mappings (file changed since registration):")
			for _, s := range stale {
				fmt.Printf("   - %s (%s)\n", s.Path, s.MappingName)
			}
		}

		if len(unregistered) > 0 {
			fmt.Println("🕒 Unregistered:")
			for _, s := range unregistered {
				fmt.Printf("   - %s\n", s.Path)
			}
		}

		if len(unreadable) > 0 {
			fmt.Println("❌ Unreadable:")
			for _, s := range unreadable {
				fmt.Printf("   - %s\n", s.Path)
			}
		}

		fmt.Printf("\n📊 Summary: %d registered, %d stale, %d unregistered\n",
			len(registered), len(stale), len(unregistered))
	},
}
