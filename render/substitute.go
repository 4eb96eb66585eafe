// Package render implements placeholder substitution for bundled template text.
package render

import (
	"regexp"
	"strings"

	"github.com/cpcf/clickstart/scaffold"
)

// Placeholders use double-brace delimiters with optional interior whitespace.
// Only the recognized variable names match; anything else is left verbatim.
var placeholderPattern = regexp.MustCompile(`\{\{\s*(project_name|package_name|ProjectName|PackageName|package)\s*\}\}`)

// Substitute replaces every recognized placeholder in text with the value
// resolved from opts. Text without placeholders is returned unchanged, and
// unrecognized tokens survive untouched.
func Substitute(text string, opts scaffold.Options) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	project := opts.Project()
	pkg := opts.Package()

	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		switch name {
		case "project_name", "ProjectName":
			return project
		case "package_name", "PackageName", "package":
			return pkg
		default:
			return match
		}
	})
}

// Producer wraps template text as deferred content that substitutes
// placeholders once options are known.
func Producer(text string) scaffold.Producer {
	return func(opts scaffold.Options) (string, error) {
		return Substitute(text, opts), nil
	}
}
