package markdown

import (
	"fmt"
	"strings"
)

const breadcrumbSeparator = "&nbsp;&nbsp;>&nbsp;&nbsp;"

// breadcrumb renders the navigational header placed at the top of every
// generated page except the index: service name and category link back to
// the index, the entity name terminates the trail.
func breadcrumb(serviceName, category, name string) string {
	home := fmt.Sprintf("[%s](../index.md)", serviceName)
	section := fmt.Sprintf("[%s](../index.md#%s)", category, strings.ToLower(category))
	return fmt.Sprintf(`<span class="breadcrumb">%s%s%s%s%s</span>`+"\n",
		home, breadcrumbSeparator, section, breadcrumbSeparator, name)
}
