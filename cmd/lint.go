package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/lint"
)

var lintFormat string

func init() {
	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", "text", "Output format (text, json)")
}

var lintCmd = &cobra.Command{
	Use:   "lint <mapping.xml>",
	Short: "Check a mapping for referential problems",
	Long: `Check a parsed mapping for the problems the parser deliberately lets
through.

The parser records connection endpoints verbatim and coerces unusable
metadata to null; lint is where those show up:
- Errors: connections referencing unknown transformations or ports
- Warnings: duplicate transformation names, port-less transformations,
  numeric ports with no usable precision
- Info: custom transformation types, unconnected transformations

Exits non-zero when errors are found.

Examples:
  maplens lint sample_mapping.xml
  maplens lint sample_mapping.xml --format json
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadMapping(args[0])
		if err != nil {
			fmt.Println("❌ Loading mapping:", err)
			os.Exit(1)
		}

		result := lint.Run(m)

		if lintFormat == "json" {
			if err := outputLintJSON(result); err != nil {
				fmt.Println("❌ Encoding lint result:", err)
				os.Exit(1)
			}
		} else {
			outputLintText(result)
		}

		if !result.Valid {
			os.Exit(1)
		}
	},
}

func outputLintJSON(result *lint.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputLintText(result *lint.Result) {
	// Print summary
	if result.Valid {
		color.Green("✅ Mapping lint passed!")
	} else {
		color.Red("❌ Mapping lint failed!")
	}

	// Print errors
	if len(result.Errors) > 0 {
		fmt.Printf("\n🔴 Errors (%d):\n", len(result.Errors))
		printFindings(result.Errors)
	}

	// Print warnings
	if len(result.Warnings) > 0 {
		fmt.Printf("\n🟡 Warnings (%d):\n", len(result.Warnings))
		printFindings(result.Warnings)
	}

	// Print info
	if len(result.Info) > 0 {
		fmt.Printf("\n🔵 Info (%d):\n", len(result.Info))
		printFindings(result.Info)
	}

	// Print summary
	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if result.Valid {
		fmt.Printf("\n🎉 Your mapping references resolve cleanly!\n")
	} else {
		fmt.Printf("\n💡 Fix the errors above before relying on this mapping's data flow.\n")
	}
}

func printFindings(findings []lint.Finding) {
	for i, f := range findings {
		fmt.Printf("  %d. ", i+1)
		if f.Transformation != "" {
			fmt.Printf("[%s]", f.Transformation)
		}
		if f.Port != "" {
			fmt.Printf(".%s", f.Port)
		}
		if f.Transformation != "" || f.Port != "" {
			fmt.Print(": ")
		}
		fmt.Printf("%s\n", f.Message)
	}
}
