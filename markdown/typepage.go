package markdown

import (
	"fmt"
	"strings"

	"github.com/teranos/stubgen/analyzer"
	"github.com/teranos/stubgen/internal/util"
)

// RenderStructure renders one structure page.
func RenderStructure(serviceName string, item analyzer.TypeInfo) Page {
	return renderTypePage(serviceName, item, FolderStructures, SectionStructure, nil)
}

// RenderError renders one error page.
func RenderError(serviceName string, item analyzer.TypeInfo) Page {
	return renderTypePage(serviceName, item, FolderErrors, SectionError, nil)
}

// RenderEnum renders one enum page; the directive requests member
// enumeration so the enum's values are listed.
func RenderEnum(serviceName string, item analyzer.TypeInfo) Page {
	return renderTypePage(serviceName, item, FolderEnums, SectionEnum, util.Ptr(true))
}

func renderTypePage(serviceName string, item analyzer.TypeInfo, folder, sectionTitle string, members *bool) Page {
	lines := []string{
		fmt.Sprintf("# %s", item.Name),
		"",
		fmt.Sprintf("## %s", sectionTitle),
	}
	lines = append(lines, Directive(item.ModulePath, DirectiveOptions{Members: members})...)

	return Page{
		Path:    fmt.Sprintf("%s/%s.md", folder, item.Name),
		Content: breadcrumb(serviceName, util.TitleWords(folder), item.Name) + strings.Join(lines, "\n"),
	}
}
