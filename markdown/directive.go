// Package markdown renders API reference pages for one analyzed client
// package: the index, one page per operation, and one page per structure,
// error, enum, and union. Rendering is pure; pages carry their own
// output-relative paths and identical input always yields identical bytes.
package markdown

import "fmt"

// defaultHeadingLevel is the heading level directives render at unless a
// page asks for a deeper one.
const defaultHeadingLevel = 3

// DirectiveOptions control the options block attached to a directive.
type DirectiveOptions struct {
	// HeadingLevel for the rendered documentation; 0 means the default (3).
	HeadingLevel int

	// Members toggles member enumeration. Nil omits the option entirely.
	Members *bool

	// MergeInitIntoClass folds constructor documentation into the class.
	MergeInitIntoClass bool

	// IgnoreInitSummary suppresses the constructor summary line.
	IgnoreInitSummary bool
}

// Directive renders an embedded documentation directive for a fully
// qualified path, e.g.:
//
//	::: aws_sdk_bedrock_runtime.client.BedrockRuntimeClient
//	    options:
//	        heading_level: 3
func Directive(modulePath string, opts DirectiveOptions) []string {
	level := opts.HeadingLevel
	if level == 0 {
		level = defaultHeadingLevel
	}

	lines := []string{
		fmt.Sprintf("::: %s", modulePath),
		"    options:",
		fmt.Sprintf("        heading_level: %d", level),
	}
	if opts.Members != nil {
		lines = append(lines, fmt.Sprintf("        members: %t", *opts.Members))
	}
	if opts.MergeInitIntoClass {
		lines = append(lines, "        merge_init_into_class: true")
	}
	if opts.IgnoreInitSummary {
		lines = append(lines,
			"        docstring_options:",
			"            ignore_init_summary: true")
	}
	return lines
}
