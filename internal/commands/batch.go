// internal/commands/batch.go
package airo

import (
	"github.com/spf13/cobra"
)

var batchOpts batchOptions

// batchCmd exports one report per payload in a directory.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Export reports for every payload in a directory",
	Long: `Compose and export a report for every *.json payload in --dir. Payloads are
processed concurrently (batchWorkers at a time). The subject name comes from the
payload's companyName, or the file name when the payload has none.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, batchOpts)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchOpts.dir, "dir", "", "Directory of analysis payload JSON files (required)")
	batchCmd.Flags().StringVar(&batchOpts.outputDir, "output-dir", "", "Directory for exported documents (overrides --outputDir)")
	batchCmd.Flags().IntVar(&batchOpts.workers, "workers", 0, "Concurrent payloads (0 = batchWorkers from config)")
	_ = batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}
