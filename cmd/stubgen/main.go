package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/stubgen/cmd/stubgen/commands"
	"github.com/teranos/stubgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stubgen",
	Short: "stubgen - Documentation stub generator for SDK client packages",
	Long: `stubgen - Generate cross-referenced markdown API reference pages.

stubgen inspects a generated SDK client package's module graph manifest,
classifies its operations and model types, and writes one markdown stub page
per operation, structure, union, enum, and error, plus a per-client index.

Available commands:
  generate - Generate documentation stubs for one client package
  batch    - Generate documentation stubs for every client under a directory
  version  - Show version information

Examples:
  stubgen generate --client-dir ./aws-sdk-lambda --output-dir ./docs/clients/lambda
  stubgen generate --client-dir ./aws-sdk-lambda --output-dir ./out --watch
  stubgen batch --clients-dir ./packages --docs-dir ./docs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
