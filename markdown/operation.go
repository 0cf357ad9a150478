package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/stubgen/analyzer"
)

// RenderOperation renders one operation page. Non-streaming operations embed
// the output directive directly; streaming operations describe the stream
// shape, link the event union page(s) that exist for the stream kind, and
// embed the terminal output one heading level deeper under "Initial Response
// Structure".
func RenderOperation(serviceName string, op analyzer.OperationInfo) Page {
	lines := []string{
		fmt.Sprintf("# %s", op.Name),
		"",
		"## Operation",
		"",
	}
	lines = append(lines, Directive(op.ModulePath, DirectiveOptions{})...)
	lines = append(lines, "", "## Input", "")
	lines = append(lines, Directive(op.Input.ModulePath, DirectiveOptions{})...)
	lines = append(lines, "", "## Output", "")

	if op.StreamKind == analyzer.StreamNone {
		lines = append(lines, Directive(op.Output.ModulePath, DirectiveOptions{})...)
	} else {
		lines = append(lines,
			fmt.Sprintf("This operation returns %s.", op.StreamKind.Description()),
			"",
			"### Event Stream Structure",
			"",
		)
		if op.EventInputType != "" {
			lines = append(lines,
				"#### Input Event Type",
				"",
				fmt.Sprintf("[`%s`](../%s/%s.md)", op.EventInputType, FolderUnions, op.EventInputType),
				"",
			)
		}
		if op.EventOutputType != "" {
			lines = append(lines,
				"#### Output Event Type",
				"",
				fmt.Sprintf("[`%s`](../%s/%s.md)", op.EventOutputType, FolderUnions, op.EventOutputType),
				"",
			)
		}
		lines = append(lines, "### Initial Response Structure", "")
		lines = append(lines, Directive(op.Output.ModulePath, DirectiveOptions{HeadingLevel: 4})...)
	}

	return Page{
		Path:    fmt.Sprintf("%s/%s.md", FolderOperations, op.Name),
		Content: breadcrumb(serviceName, "Operations", op.Name) + strings.Join(lines, "\n"),
	}
}
