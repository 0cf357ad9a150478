package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/stubgen/config"
	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/generator"
)

var (
	batchClientsDir string
	batchDocsDir    string
	batchWorkers    int
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate documentation stubs for every client under a directory",
	Long: `Generate markdown documentation stubs for every SDK client package found
under the clients directory.

A directory counts as a client package when it contains a module graph
manifest (by default at docs/module-graph.json). Clients are processed
concurrently; a failed client never interrupts the others. On top of the
per-client pages this writes the clients index and the SUMMARY.md navigation
manifest.

Examples:
  stubgen batch --clients-dir ./packages --docs-dir ./docs
  stubgen batch --clients-dir ./packages --docs-dir ./docs --workers 4`,
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().StringVar(&batchClientsDir, "clients-dir", "", "Directory containing client packages (required)")
	BatchCmd.Flags().StringVar(&batchDocsDir, "docs-dir", "", "Documentation root to write into (required)")
	BatchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent generation tasks (0 = one per CPU)")
	BatchCmd.MarkFlagRequired("clients-dir")
	BatchCmd.MarkFlagRequired("docs-dir")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Batch.Workers = batchWorkers
	}

	summary, err := generator.New(cfg).GenerateAll(batchClientsDir, batchDocsDir)
	if err != nil {
		return err
	}

	pterm.Println()
	for _, result := range summary.Results {
		if result.Err != nil {
			pterm.Error.Printf("✗ %s: %v\n", result.PackageName, result.Err)
		} else {
			pterm.Success.Printf("✓ %s\n", result.PackageName)
		}
	}
	pterm.Println()

	failed := summary.Failed()
	if len(failed) > 0 {
		names := make([]string, len(failed))
		for i, result := range failed {
			names[i] = result.PackageName
		}
		return errors.Newf("%d of %d clients failed: %v",
			len(failed), len(summary.Results), names)
	}

	pterm.Success.Printf("Generated documentation for %d clients\n", len(summary.Results))
	return nil
}
