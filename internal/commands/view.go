// internal/commands/view.go
package airo

import (
	"github.com/spf13/cobra"
)

var viewOpts reportOptions

// viewCmd opens the interactive report viewer.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse a visibility report interactively",
	Long: `Open an analysis payload in the terminal viewer. Press c and k to collapse
the competitor and checklist sections, e to export the document and q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd, viewOpts)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewOpts.inputPath, "input", "", "Path to the analysis payload JSON (required)")
	viewCmd.Flags().StringVar(&viewOpts.name, "name", "", "Subject (brand) name shown in the report")
	viewCmd.Flags().StringVar(&viewOpts.domain, "domain", "", "Subject domain shown under the name")
	viewCmd.Flags().StringVar(&viewOpts.outputDir, "output-dir", "", "Directory for exported documents (overrides --outputDir)")
	_ = viewCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(viewCmd)
}
