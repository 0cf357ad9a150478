package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/stubgen/config"
	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/generator"
)

var (
	generateClientDir   string
	generateOutputDir   string
	generateServiceName string
	generateWatch       bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate documentation stubs for one client package",
	Long: `Generate markdown documentation stubs for a single SDK client package.

The client directory must contain a module graph manifest (by default at
docs/module-graph.json). One page is written per operation, structure, union,
enum, and error, plus the client's index page.

Examples:
  stubgen generate --client-dir ./aws-sdk-lambda --output-dir ./docs/clients/lambda
  stubgen generate --client-dir ./aws-sdk-lambda --output-dir ./out --service-name "AWS Lambda"
  stubgen generate --client-dir ./aws-sdk-lambda --output-dir ./out --watch`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVar(&generateClientDir, "client-dir", "", "Client package directory (required)")
	GenerateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Output directory for generated pages (required)")
	GenerateCmd.Flags().StringVar(&generateServiceName, "service-name", "", "Service display name (default: derived from the directory name)")
	GenerateCmd.Flags().BoolVar(&generateWatch, "watch", false, "Regenerate whenever the module graph manifest changes")
	GenerateCmd.MarkFlagRequired("client-dir")
	GenerateCmd.MarkFlagRequired("output-dir")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if _, err := os.Stat(generateClientDir); err != nil {
		return errors.Wrapf(err, "client directory %s not accessible", generateClientDir)
	}

	gen := generator.New(cfg)

	if generateWatch {
		return runGenerateWatch(gen)
	}

	result, err := gen.GenerateClient(generateClientDir, generateOutputDir, generateServiceName)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Generated %d pages for %s\n", result.PagesWritten, result.ServiceName)
	return nil
}

func runGenerateWatch(gen *generator.Generator) error {
	watcher, err := generator.NewWatcher(gen, generateClientDir, generateOutputDir, generateServiceName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Println("Watching for module graph changes (Ctrl-C to stop)")
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
