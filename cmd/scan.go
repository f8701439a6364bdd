package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/mapping"
	"github.com/gkalanidhi/maplens/parser"
)

var scanFailFast bool

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Parse every mapping XML under a directory and report results",
	Long: `Walk a directory tree, parse every .xml mapping export found and
print a per-file report with transformation and connector counts.

Examples:
  maplens scan ./exports
  maplens scan ./exports --fail-fast
`,
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

		fmt.Printf("🔄 Scanning %d mapping files...\n", len(files))

		results := make([]scanResult, 0, len(files))

		uiprogress.Start()
		bar := uiprogress.AddBar(len(files)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("Parsing %d/%d", b.Current(), len(files))
		})

		for _, path := range files {
			m, err := parser.Parse(path)
			res := scanResult{path: path, err: err}
			if err == nil {
				res.summary = m.Summary()
			}
			results = append(results, res)
			bar.Incr()

			if err != nil && scanFailFast {
				break
			}
		}
		uiprogress.Stop()

		showScanReport(results)
	},
}

type scanResult struct {
	path    string
	summary mapping.Summary
	err     error
}

// findMappingFiles returns every .xml file under root, sorted by WalkDir's
// lexical order so repeated scans report files in a stable sequence.
func findMappingFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func showScanReport(results []scanResult) {
	fmt.Println("\n📊 Scan Report:")
	fmt.Printf("%-25s %-15s %6s %6s %5s %5s\n", "Mapping", "Folder", "Trans", "Conns", "Src", "Tgt")
	fmt.Println(strings.Repeat("-", 70))

	var parsed, failed, totalTrans, totalConns int
	var failures []scanResult

	for _, res := range results {
		if res.err != nil {
			failed++
			failures = append(failures, res)
			continue
		}

		parsed++
		totalTrans += res.summary.TotalTransformations
		totalConns += res.summary.TotalConnections

		name := res.summary.Name
		if len(name) > 23 {
			name = name[:20] + "..."
		}
		folder := "-"
		if res.summary.Folder != nil {
			folder = *res.summary.Folder
		}

		fmt.Printf("%-25s %-15s %6d %6d %5d %5d\n",
			name, folder,
			res.summary.TotalTransformations, res.summary.TotalConnections,
			res.summary.Sources, res.summary.Targets)
	}

	fmt.Printf("\n📊 Summary: %d files, %d parsed, %d failed, %d transformations, %d connections\n",
		len(results), parsed, failed, totalTrans, totalConns)

	if len(failures) > 0 {
		fmt.Println("\n❌ Failed files:")
		for _, res := range failures {
			fmt.Printf("   - %s: %v\n", res.path, res.err)
		}
		os.Exit(1)
	}
}

func init() {
	scanCmd.Flags().BoolVar(&scanFailFast, "fail-fast", false, "Stop scanning at the first file that fails to parse")
}
