package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/stubgen/analyzer"
	"github.com/teranos/stubgen/internal/util"
)

// RenderIndex renders the client's index.md: client directive, operation
// listing, configuration, and one section per non-empty model category in
// the fixed order Structures, Errors, Unions, Enums. All listings are
// alphabetical.
func RenderIndex(serviceName string, client *analyzer.ClientInfo) Page {
	lines := []string{
		fmt.Sprintf("# %s", serviceName),
		"",
		"## Client",
		"",
	}
	lines = append(lines, Directive(client.ModulePath, DirectiveOptions{
		Members:            util.Ptr(false),
		MergeInitIntoClass: true,
		IgnoreInitSummary:  true,
	})...)
	lines = append(lines, "")

	if len(client.Operations) > 0 {
		lines = append(lines, "## Operations", "")
		for _, op := range sortedOperations(client.Operations) {
			lines = append(lines, fmt.Sprintf("- [`%s`](%s/%s.md)", op.Name, FolderOperations, op.Name))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Configuration", "")
	lines = append(lines, Directive(client.Config.ModulePath, DirectiveOptions{
		MergeInitIntoClass: true,
		IgnoreInitSummary:  true,
	})...)
	lines = append(lines, "")
	lines = append(lines, Directive(client.Plugin.ModulePath, DirectiveOptions{})...)

	models := client.Models
	sections := []struct {
		title  string
		folder string
		names  []string
	}{
		{"Structures", FolderStructures, typeNames(models.Structures)},
		{"Errors", FolderErrors, typeNames(models.Errors)},
		{"Unions", FolderUnions, unionNames(models.Unions)},
		{"Enums", FolderEnums, typeNames(models.Enums)},
	}
	for _, section := range sections {
		if len(section.names) == 0 {
			continue
		}
		lines = append(lines, "", fmt.Sprintf("## %s", section.title), "")
		for _, name := range sortedNames(section.names) {
			lines = append(lines, fmt.Sprintf("- [`%s`](%s/%s.md)", name, section.folder, name))
		}
	}

	return Page{Path: "index.md", Content: strings.Join(lines, "\n")}
}
