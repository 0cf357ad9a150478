package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/stubgen/analyzer"
)

// RenderUnion renders one union page: the union's own declaration followed
// by a directive per member, in declared order.
func RenderUnion(serviceName string, union analyzer.UnionInfo) Page {
	lines := []string{
		fmt.Sprintf("# %s", union.Name),
		"",
		"## Union Type",
	}
	lines = append(lines, Directive(union.ModulePath, DirectiveOptions{})...)
	lines = append(lines, "")

	if len(union.Members) > 0 {
		lines = append(lines, "## Union Member Types")
		for _, member := range union.Members {
			lines = append(lines, "")
			lines = append(lines, Directive(member.ModulePath, DirectiveOptions{})...)
		}
	}

	return Page{
		Path:    fmt.Sprintf("%s/%s.md", FolderUnions, union.Name),
		Content: breadcrumb(serviceName, "Unions", union.Name) + strings.Join(lines, "\n"),
	}
}
