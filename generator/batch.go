package generator

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/teranos/stubgen/config"
	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/internal/util"
	"github.com/teranos/stubgen/logger"
	"github.com/teranos/stubgen/markdown"
)

// BatchResult reports the outcome of generating one client during a batch
// run. Err is nil on success.
type BatchResult struct {
	PackageName string
	ServiceName string
	Err         error
}

// BatchSummary aggregates a full batch run.
type BatchSummary struct {
	Results []BatchResult
}

// Failed returns the results whose generation failed.
func (s *BatchSummary) Failed() []BatchResult {
	var failed []BatchResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// OK reports whether every client generated successfully.
func (s *BatchSummary) OK() bool {
	return len(s.Failed()) == 0
}

// DiscoverClients returns the names of client package directories under
// clientsDir, sorted lexicographically. A directory is a client package when
// it contains the module graph manifest at the configured marker path.
func (g *Generator) DiscoverClients(clientsDir string) ([]string, error) {
	entries, err := os.ReadDir(clientsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read clients directory %s", clientsDir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		marker := g.ManifestPath(filepath.Join(clientsDir, entry.Name()))
		if _, err := os.Stat(marker); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// GenerateAll generates documentation for every client package found under
// clientsDir, writing per-client pages under docsDir/clients/<path>/ plus
// the clients index and the navigation manifest. Clients are processed
// concurrently; one client's failure never interrupts the others.
func (g *Generator) GenerateAll(clientsDir, docsDir string) (*BatchSummary, error) {
	names, err := g.DiscoverClients(clientsDir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.NewDiscoveryError("no client packages found under %s", clientsDir)
	}

	workers := g.workerCount()
	logger.Infow("Starting batch generation",
		"clients", len(names),
		"workers", workers)

	jobs := make(chan string)
	results := make(chan BatchResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				results <- g.generateOne(clientsDir, docsDir, name)
			}
		}()
	}

	go func() {
		for _, name := range names {
			jobs <- name
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	byName := make(map[string]BatchResult, len(names))
	for result := range results {
		byName[result.PackageName] = result
		if result.Err != nil {
			logger.Errorw("Client generation failed",
				"client", result.PackageName,
				"error", result.Err)
		}
	}

	summary := &BatchSummary{}
	for _, name := range names {
		summary.Results = append(summary.Results, byName[name])
	}

	if err := g.writeBatchPages(docsDir, names); err != nil {
		return nil, err
	}

	logger.Infow("Batch generation complete",
		"clients", len(names),
		"failed", len(summary.Failed()))
	return summary, nil
}

func (g *Generator) generateOne(clientsDir, docsDir, name string) BatchResult {
	prefix := g.cfg.Docs.PackagePrefix
	result := BatchResult{
		PackageName: name,
		ServiceName: util.ServiceName(name, prefix),
	}

	outputDir := filepath.Join(docsDir, "clients", util.PathName(name, prefix))
	_, result.Err = g.GenerateClient(filepath.Join(clientsDir, name), outputDir, result.ServiceName)
	return result
}

// writeBatchPages writes the clients index and the navigation manifest.
// Both list every discovered client, including ones that failed, so a rerun
// after a fix needs no nav changes.
func (g *Generator) writeBatchPages(docsDir string, names []string) error {
	prefix := g.cfg.Docs.PackagePrefix
	links := make([]markdown.ClientLink, len(names))
	for i, name := range names {
		links[i] = markdown.ClientLink{
			ServiceName: util.ServiceName(name, prefix),
			PackageName: name,
			PathName:    util.PathName(name, prefix),
		}
	}

	indexPath := filepath.Join(docsDir, "clients", "index.md")
	if err := os.MkdirAll(filepath.Dir(indexPath), config.DefaultDirPermissions); err != nil {
		return errors.WrapWrite(err, indexPath)
	}
	if err := os.WriteFile(indexPath, []byte(markdown.RenderClientsIndex(links)), config.DefaultFilePermissions); err != nil {
		return errors.WrapWrite(err, indexPath)
	}

	navPath := filepath.Join(docsDir, "SUMMARY.md")
	if err := os.WriteFile(navPath, []byte(markdown.RenderNav(links)), config.DefaultFilePermissions); err != nil {
		return errors.WrapWrite(err, navPath)
	}
	return nil
}

func (g *Generator) workerCount() int {
	if g.cfg.Batch.Workers > 0 {
		return g.cfg.Batch.Workers
	}
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		logger.Warnw("Failed to detect CPU count, using a single worker",
			"error", err)
		return 1
	}
	return count
}
