package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/catalog"
)

var unregisterYes bool

var unregisterCmd = &cobra.Command{
	Use:   "unregister <mapping-name>",
	Short: "Remove a mapping from the catalog",
	Long: `Remove every catalog row for a mapping name, including superseded
revisions. This only touches the catalog; the XML files stay where
they are.

Examples:
  maplens unregister m_customer_sales
  maplens unregister m_customer_sales --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !unregisterYes {
			fmt.Printf("⚠️  Remove all catalog rows for '%s'? [y/N]: ", name)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("🕒 Aborted, nothing removed.")
				return
			}
		}

		removed, err := catalog.Unregister(name)
		if err != nil {
			fmt.Printf("❌ Error unregistering %s: %v\n", name, err)
			os.Exit(1)
		}

		switch removed {
		case 0:
			fmt.Printf("📋 No catalog rows found for '%s'\n", name)
		case 1:
			fmt.Println("✅ Removed 1 catalog row.")
		default:
			fmt.Printf("✅ Removed %d catalog rows.\n", removed)
		}
	},
}

func init() {
	unregisterCmd.Flags().BoolVarP(&unregisterYes, "yes", "y", false, "Skip the confirmation prompt")
}
