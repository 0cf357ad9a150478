package util

import "strings"

// PathName converts a client package directory name to its documentation
// path segment: separators are normalized to hyphens and the configured
// package prefix is stripped (e.g. "aws-sdk-bedrock-runtime" -> "bedrock-runtime").
func PathName(dirName, prefix string) string {
	name := strings.ReplaceAll(dirName, "_", "-")
	prefix = strings.ReplaceAll(prefix, "_", "-")
	return strings.TrimPrefix(name, prefix)
}

// ServiceName converts a client package directory name to a display name
// (e.g. "aws-sdk-bedrock-runtime" -> "Bedrock Runtime").
func ServiceName(dirName, prefix string) string {
	return TitleWords(strings.ReplaceAll(PathName(dirName, prefix), "-", " "))
}

// TitleWords upper-cases the first letter of each space-separated word and
// lower-cases the rest, like Python's str.title() for ASCII input.
func TitleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
