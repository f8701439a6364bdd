package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <mapping.xml>",
	Short: "Print the mapping's headline numbers as JSON",
	Long: `Print the structured summary of a mapping as indented JSON: name,
folder, transformation and connection totals, source and target counts,
and the per-type breakdown. The machine-readable counterpart of the
'inspect' report header.

Examples:
  maplens summary sample_mapping.xml
  maplens summary sample_mapping.json   # works on exports too
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadMapping(args[0])
		if err != nil {
			fmt.Println("❌ Loading mapping:", err)
			os.Exit(1)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(m.Summary()); err != nil {
			fmt.Println("❌ Encoding summary:", err)
			os.Exit(1)
		}
	},
}
