package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/graph"
	"github.com/gkalanidhi/maplens/mapping"
)

var (
	docsFormat string
	docsOutput string
)

var docsCmd = &cobra.Command{
	Use:   "docs <mapping.xml>",
	Short: "Generate data-flow diagrams from a mapping",
	Long: `Generate data-flow diagrams from a parsed mapping.

Supported formats:
  - mermaid: Mermaid flowchart (Markdown-wrapped)
  - graphviz: Graphviz DOT format
  - plantuml: PlantUML component diagram

Examples:
  maplens docs sample_mapping.xml --format mermaid --output flow.md
  maplens docs sample_mapping.xml --format graphviz --output flow.dot
  maplens docs sample_mapping.xml --format all --output docs/
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadMapping(args[0])
		if err != nil {
			fmt.Printf("❌ Error loading mapping: %v\n", err)
			os.Exit(1)
		}

		if docsFormat == "all" {
			outDir := docsOutput
			if outDir == "" {
				outDir = "docs"
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				fmt.Printf("❌ Error creating output directory: %v\n", err)
				os.Exit(1)
			}
			generateAllDiagrams(m, outDir)
			return
		}

		switch docsFormat {
		case "mermaid":
			writeDiagram(graph.Mermaid(m), docsOutput, "flow.md", "Mermaid")
		case "graphviz":
			writeDiagram(graph.Graphviz(m), docsOutput, "flow.dot", "Graphviz")
		case "plantuml":
			writeDiagram(graph.PlantUML(m), docsOutput, "flow.puml", "PlantUML")
		default:
			fmt.Printf("❌ Unsupported format: %s\n", docsFormat)
			fmt.Println("Supported formats: mermaid, graphviz, plantuml, all")
			os.Exit(1)
		}

		fmt.Println("✅ Documentation generated successfully!")
	},
}

func writeDiagram(content, output, fallback, label string) {
	if output == "" {
		output = fallback
	}

	if err := os.WriteFile(output, []byte(content), 0644); err != nil {
		fmt.Printf("❌ Error writing %s file: %v\n", label, err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s diagram saved to: %s\n", label, output)
}

func generateAllDiagrams(m *mapping.Mapping, outDir string) {
	writeDiagram(graph.Mermaid(m), filepath.Join(outDir, "flow.md"), "", "Mermaid")
	writeDiagram(graph.Graphviz(m), filepath.Join(outDir, "flow.dot"), "", "Graphviz")
	writeDiagram(graph.PlantUML(m), filepath.Join(outDir, "flow.puml"), "", "PlantUML")

	fmt.Printf("✅ All diagrams generated in: %s/\n", outDir)
}

func init() {
	docsCmd.Flags().StringVarP(&docsFormat, "format", "f", "mermaid", "Output format (mermaid, graphviz, plantuml, all)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output file or directory (default: format-specific filename)")
}
