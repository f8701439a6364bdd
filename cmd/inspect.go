package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/export"
	"github.com/gkalanidhi/maplens/parser"
	"github.com/gkalanidhi/maplens/report"
)

var (
	inspectFormat string
	inspectOutput string
	noExport      bool
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "json", "Export format (json, yaml)")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Export destination (default: input path with the format's extension)")
	inspectCmd.Flags().BoolVar(&noExport, "no-export", false, "Print the summary only, skip the export file")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <mapping.xml>",
	Short: "Parse a mapping, print its summary and export it",
	Long: `Parse a PowerCenter mapping XML export, print the full text summary
and write the structured export next to the input file.

Examples:
  maplens inspect sample_mapping.xml                # summary + sample_mapping.json
  maplens inspect sample_mapping.xml -f yaml        # summary + sample_mapping.yaml
  maplens inspect sample_mapping.xml -o out.json    # custom export destination
  maplens inspect sample_mapping.xml --no-export    # summary only
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		xmlFile := args[0]

		fmt.Printf("🔄 Parsing mapping: %s\n", xmlFile)
		m, err := parser.Parse(xmlFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Error parsing mapping: %v\n", err)
			var formatErr *parser.FormatError
			if errors.As(err, &formatErr) {
				fmt.Fprintf(os.Stderr, "   caused by: %v\n", formatErr.Err)
			}
			os.Exit(1)
		}

		fmt.Print(report.Summarize(m))

		if !noExport {
			dest := inspectOutput
			if dest == "" {
				dest = export.DerivedPath(xmlFile, inspectFormat)
			}

			if err := export.WriteFile(m, dest, inspectFormat); err != nil {
				fmt.Fprintf(os.Stderr, "❌ Error writing export: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("\n✅ Mapping exported to: %s\n", dest)
		}

		fmt.Println("\n✅ Parsing completed successfully!")
	},
}
