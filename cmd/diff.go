package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/diff"
)

var diffVisual bool

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show differences between two mapping revisions",
	Long: `Show what changed between two revisions of a mapping. Either side can
be a PowerCenter XML export or a JSON export written by 'maplens export'.

Examples:
  maplens diff v1/m_sales.xml v2/m_sales.xml     # text format
  maplens diff old.json new.xml --visual         # tree format with colors
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		oldMapping, err := loadMapping(args[0])
		if err != nil {
			fmt.Printf("❌ Error loading old revision: %v\n", err)
			os.Exit(1)
		}

		newMapping, err := loadMapping(args[1])
		if err != nil {
			fmt.Printf("❌ Error loading new revision: %v\n", err)
			os.Exit(1)
		}

		changes := diff.Compare(oldMapping, newMapping)

		if len(changes) == 0 {
			fmt.Println("✅ No differences found between mapping revisions")
			return
		}

		if diffVisual {
			showVisualDiff(changes)
		} else {
			showTextDiff(changes)
		}
	},
}

func showVisualDiff(changes []diff.Change) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue, color.Bold)

	fmt.Println("🌳 Mapping Changes (Visual Diff)")
	fmt.Println(strings.Repeat("=", 50))

	for _, c := range changes {
		if c.Type == diff.RenameMapping {
			yellow.Printf("  ✏️  RENAME MAPPING %s\n", c.Detail)
		}
	}

	fmt.Println("\n📋 Transformations:")
	for _, c := range changes {
		switch c.Type {
		case diff.AddTransformation:
			green.Printf("  ➕ ADD %s (%s)\n", c.Transformation, c.Detail)
		case diff.DropTransformation:
			red.Printf("  ❌ DROP %s (%s)\n", c.Transformation, c.Detail)
		case diff.ModifyTransformation:
			yellow.Printf("  ⚡ MODIFY %s: %s\n", c.Transformation, c.Detail)
		}
	}

	// Group port changes under their transformation
	portChanges := make(map[string][]diff.Change)
	var order []string
	for _, c := range changes {
		switch c.Type {
		case diff.AddPort, diff.DropPort, diff.ModifyPort:
			if _, seen := portChanges[c.Transformation]; !seen {
				order = append(order, c.Transformation)
			}
			portChanges[c.Transformation] = append(portChanges[c.Transformation], c)
		}
	}

	fmt.Println("\n📝 Ports:")
	for _, name := range order {
		fmt.Printf("  📋 %s:\n", name)
		for _, c := range portChanges[name] {
			switch c.Type {
			case diff.AddPort:
				green.Printf("    ➕ ADD %s (%s)\n", c.Port, c.Detail)
			case diff.DropPort:
				red.Printf("    ❌ DROP %s\n", c.Port)
			case diff.ModifyPort:
				blue.Printf("    🔄 MODIFY %s: %s\n", c.Port, c.Detail)
			}
		}
	}

	fmt.Println("\n🔗 Connections:")
	for _, c := range changes {
		switch c.Type {
		case diff.AddConnection:
			green.Printf("  ➕ ADD %s\n", c.Detail)
		case diff.DropConnection:
			red.Printf("  ❌ DROP %s\n", c.Detail)
		}
	}
}

func showTextDiff(changes []diff.Change) {
	fmt.Println("📋 Mapping Changes (Text Format)")
	fmt.Println(strings.Repeat("=", 40))

	for i, c := range changes {
		fmt.Printf("%d. %s\n", i+1, c)
	}
}

func init() {
	diffCmd.Flags().BoolVarP(&diffVisual, "visual", "v", false, "Show changes in visual tree format")
}
