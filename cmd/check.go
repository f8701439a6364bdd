package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <mapping.xml>",
	Short: "Check that a mapping file parses cleanly",
	Long: `Parse a mapping file and report whether it is usable, without
printing the summary or writing any export.

This command will:
- Verify the file is well-formed XML
- Verify a MAPPING element is present
- Report the headline counts

Examples:
  maplens check sample_mapping.xml
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := parser.Parse(args[0])
		if err != nil {
			fmt.Printf("❌ Mapping check failed: %v\n", err)
			os.Exit(1)
		}

		s := m.Summary()
		fmt.Printf("✅ Well-formed mapping: %s\n", m.Name)
		fmt.Printf("📊 %d transformations, %d connections\n", s.TotalTransformations, s.TotalConnections)
	},
}
