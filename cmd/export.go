package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gkalanidhi/maplens/export"
)

var (
	exportFormat string
	exportOutput string
	exportStdout bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Destination file (default: input path with the format's extension)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the export to stdout instead of a file")
	viper.BindPFlag("export.format", exportCmd.Flags().Lookup("format"))
}

var exportCmd = &cobra.Command{
	Use:   "export <mapping.xml>",
	Short: "Export a mapping as JSON or YAML",
	Long: `Export the full mapping graph, every transformation, port, property
and connection, with nothing truncated. Optional fields come out as
explicit nulls, so exports round-trip back through 'maplens diff'.

Examples:
  maplens export sample_mapping.xml                 # sample_mapping.json
  maplens export sample_mapping.xml --format yaml   # sample_mapping.yaml
  maplens export sample_mapping.xml --stdout        # print to stdout
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadMapping(args[0])
		if err != nil {
			fmt.Println("❌ Loading mapping:", err)
			os.Exit(1)
		}

		format := viper.GetString("export.format")
		if format == "" {
			format = exportFormat
		}

		if exportStdout {
			if err := export.Write(os.Stdout, m, format); err != nil {
				fmt.Println("❌ Exporting mapping:", err)
				os.Exit(1)
			}
			return
		}

		dest := exportOutput
		if dest == "" {
			dest = export.DerivedPath(args[0], format)
		}

		if err := export.WriteFile(m, dest, format); err != nil {
			fmt.Println("❌ Exporting mapping:", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Mapping exported to: %s\n", dest)
	},
}
