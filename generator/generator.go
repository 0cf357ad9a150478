// Package generator orchestrates documentation stub generation: it loads a
// client package's module graph manifest, analyzes it, renders the markdown
// pages, and writes them under the output directory. All analysis and
// rendering happens before the first write, so a failed client never leaves
// partial output behind.
package generator

import (
	"os"
	"path/filepath"

	"github.com/teranos/stubgen/analyzer"
	"github.com/teranos/stubgen/config"
	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
	"github.com/teranos/stubgen/internal/util"
	"github.com/teranos/stubgen/logger"
	"github.com/teranos/stubgen/markdown"
)

// Generator produces documentation stubs for client packages.
type Generator struct {
	cfg *config.Config
}

// New returns a Generator using the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Result summarizes one successful per-client generation run.
type Result struct {
	ServiceName  string
	PagesWritten int
}

// ManifestPath returns the module graph manifest location for a client
// package directory.
func (g *Generator) ManifestPath(clientDir string) string {
	return filepath.Join(clientDir, filepath.FromSlash(g.cfg.Docs.MarkerPath))
}

// GenerateClient generates all documentation pages for one client package.
// serviceName may be empty, in which case it is derived from the client
// directory name.
func (g *Generator) GenerateClient(clientDir, outputDir, serviceName string) (*Result, error) {
	if serviceName == "" {
		serviceName = util.ServiceName(filepath.Base(clientDir), g.cfg.Docs.PackagePrefix)
	}

	pkg, err := graph.Load(g.ManifestPath(clientDir))
	if err != nil {
		return nil, err
	}

	client, err := analyzer.AnalyzeClient(pkg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to analyze client package %s", pkg.Name)
	}

	pages := renderPages(serviceName, client)

	logger.Debugw("Rendered documentation pages",
		"service", serviceName,
		"operations", len(client.Operations),
		"structures", len(client.Models.Structures),
		"errors", len(client.Models.Errors),
		"enums", len(client.Models.Enums),
		"unions", len(client.Models.Unions))

	if err := writePages(outputDir, pages); err != nil {
		logger.Errorw("Failed to write documentation files",
			"service", serviceName,
			"error", err)
		return nil, err
	}

	logger.Infow("Generated documentation stubs",
		"service", serviceName,
		"pages", len(pages),
		"output", outputDir)

	return &Result{ServiceName: serviceName, PagesWritten: len(pages)}, nil
}

// renderPages renders every page for the client in a fixed order: index
// first, then operations, structures, errors, enums, unions.
func renderPages(serviceName string, client *analyzer.ClientInfo) []markdown.Page {
	pages := []markdown.Page{markdown.RenderIndex(serviceName, client)}

	for _, op := range client.Operations {
		pages = append(pages, markdown.RenderOperation(serviceName, op))
	}
	for _, item := range client.Models.Structures {
		pages = append(pages, markdown.RenderStructure(serviceName, item))
	}
	for _, item := range client.Models.Errors {
		pages = append(pages, markdown.RenderError(serviceName, item))
	}
	for _, item := range client.Models.Enums {
		pages = append(pages, markdown.RenderEnum(serviceName, item))
	}
	for _, union := range client.Models.Unions {
		pages = append(pages, markdown.RenderUnion(serviceName, union))
	}

	return pages
}

func writePages(outputDir string, pages []markdown.Page) error {
	for _, page := range pages {
		target := filepath.Join(outputDir, filepath.FromSlash(page.Path))
		if err := os.MkdirAll(filepath.Dir(target), config.DefaultDirPermissions); err != nil {
			return errors.WrapWrite(err, target)
		}
		if err := os.WriteFile(target, []byte(page.Content), config.DefaultFilePermissions); err != nil {
			return errors.WrapWrite(err, target)
		}
	}
	return nil
}
