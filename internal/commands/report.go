// internal/commands/report.go
package airo

import (
	"github.com/spf13/cobra"
)

var reportOpts reportOptions

// reportCmd turns one analysis payload into a terminal summary and an exported document.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build a visibility report from an analysis payload",
	Long: `Read an analysis payload (JSON object or single-element array), rank the
competitors mentioned by every model, group the optimization checklist by
category, print a summary and export the paginated document as HTML, JSON or
gzip-compressed JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, reportOpts)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.inputPath, "input", "", "Path to the analysis payload JSON (required)")
	reportCmd.Flags().StringVar(&reportOpts.name, "name", "", "Subject (brand) name shown in the report")
	reportCmd.Flags().StringVar(&reportOpts.domain, "domain", "", "Subject domain shown under the name")
	reportCmd.Flags().StringVar(&reportOpts.outputDir, "output-dir", "", "Directory for the exported document (overrides --outputDir)")
	reportCmd.Flags().BoolVar(&reportOpts.noExport, "no-export", false, "Print the summary without exporting a document")
	reportCmd.Flags().StringVar(&reportOpts.viewJSONPath, "view-json", "", "Optional path to write the view model JSON")
	_ = reportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(reportCmd)
}
