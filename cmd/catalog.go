package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/catalog"
	"github.com/gkalanidhi/maplens/parser"
)

var dryRunCatalog bool

var catalogCmd = &cobra.Command{
	Use:   "catalog <mapping.xml> [more.xml...]",
	Short: "Register mapping files in the PostgreSQL catalog",
	Long: `Parse mapping XML files and record them in the mapping_catalog table.

Re-registering an unchanged file is a no-op; a changed file supersedes
the previous registration. Use --dry-run to preview what would happen
without writing anything.

Examples:
  maplens catalog sample_mapping.xml
  maplens catalog exports/*.xml
  maplens catalog sample_mapping.xml --dry-run`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			m, err := parser.Parse(path)
			if err != nil {
				fmt.Printf("❌ Error parsing %s: %v\n", path, err)
				os.Exit(1)
			}

			if dryRunCatalog {
				status, err := catalog.Preview(m, path)
				if err != nil {
					fmt.Printf("❌ Error previewing %s: %v\n", path, err)
					os.Exit(1)
				}
				fmt.Printf("🔎 %s (%s): would be %s\n", m.Name, path, status)
				continue
			}

			status, err := catalog.Register(m, path)
			if err != nil {
				fmt.Printf("❌ Error registering %s: %v\n", path, err)
				os.Exit(1)
			}

			switch status {
			case catalog.StatusUnchanged:
				fmt.Printf("🕒 %s: already registered, checksum unchanged\n", m.Name)
			case catalog.StatusUpdated:
				fmt.Printf("✅ %s: updated (previous registration superseded)\n", m.Name)
			default:
				fmt.Printf("✅ %s: registered\n", m.Name)
			}
		}
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&dryRunCatalog, "dry-run", false, "Preview registrations without writing to the catalog")
}
