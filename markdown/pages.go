package markdown

import (
	"sort"

	"github.com/teranos/stubgen/analyzer"
)

// Page is one rendered markdown file: content plus its output-relative
// slash-separated path.
type Page struct {
	Path    string
	Content string
}

// Category folder names double as index section anchors and output
// subdirectories. Categories are disjoint, so paths cannot collide.
const (
	FolderOperations = "operations"
	FolderStructures = "structures"
	FolderErrors     = "errors"
	FolderEnums      = "enums"
	FolderUnions     = "unions"
)

// Section titles for single-type pages.
const (
	SectionStructure = "Structure Class"
	SectionError     = "Error Class"
	SectionEnum      = "Enum Class"
)

func sortedOperations(ops []analyzer.OperationInfo) []analyzer.OperationInfo {
	sorted := make([]analyzer.OperationInfo, len(ops))
	copy(sorted, ops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

func sortedNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return sorted
}

func typeNames(items []analyzer.TypeInfo) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func unionNames(items []analyzer.UnionInfo) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
