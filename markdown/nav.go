package markdown

import (
	"fmt"
	"strings"
)

// RenderNav renders the flat SUMMARY.md navigation manifest consumed by the
// documentation site: overview and contributing links, then one nested entry
// per discovered client, in discovery order.
func RenderNav(clients []ClientLink) string {
	lines := []string{
		"* [Overview](index.md)",
		"* [Contributing](contributing.md)",
		"* [Available Clients](clients/index.md)",
	}
	for _, client := range clients {
		lines = append(lines, fmt.Sprintf("    * [%s](clients/%s/index.md)",
			client.ServiceName, client.PathName))
	}
	return strings.Join(lines, "\n") + "\n"
}
