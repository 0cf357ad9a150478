package markdown

import (
	"fmt"
	"sort"
	"strings"
)

// ClientLink identifies one discovered client in the top-level navigation
// pages written by the batch driver.
type ClientLink struct {
	ServiceName string // display name, e.g. "Bedrock Runtime"
	PackageName string // package directory name, e.g. "aws-sdk-bedrock-runtime"
	PathName    string // docs path segment, e.g. "bedrock-runtime"
}

// RenderClientsIndex renders the clients/index.md page: an "All" tab listing
// every service, then one tab per first letter in alphabetical order. Rows
// keep discovery order within each tab.
func RenderClientsIndex(clients []ClientLink) string {
	lines := []string{"# Available Clients", ""}

	grouped := make(map[string][]ClientLink)
	for _, client := range clients {
		// A directory named exactly the package prefix derives an empty
		// service name; it stays in the All tab without a letter group.
		if client.ServiceName == "" {
			continue
		}
		letter := strings.ToUpper(client.ServiceName[:1])
		grouped[letter] = append(grouped[letter], client)
	}

	lines = append(lines, `=== "All"`, "")
	lines = append(lines, clientTable(clients)...)
	lines = append(lines, "")

	letters := make([]string, 0, len(grouped))
	for letter := range grouped {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	for _, letter := range letters {
		lines = append(lines, fmt.Sprintf("=== %q", letter), "")
		lines = append(lines, clientTable(grouped[letter])...)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n"
}

func clientTable(clients []ClientLink) []string {
	lines := []string{
		"    | Service | Package Name |",
		"    |----------|--------------|",
	}
	for _, client := range clients {
		lines = append(lines, fmt.Sprintf("    | **[%s](%s/index.md)** | `%s` |",
			client.ServiceName, client.PathName, client.PackageName))
	}
	return lines
}
