package patch

import (
	"strings"

	"github.com/cpcf/clickstart/scaffold"
)

const scmComment = "# Generated by setuptools_scm"

// Gitignore appends the ignore entry for the generated version file, at most
// once. Absent content is treated as an empty document; content already
// holding the entry is returned unchanged.
func Gitignore(content string, opts scaffold.Options) (string, error) {
	entry := "src/" + opts.Package() + "/_version.py"

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == entry {
			return content, nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + scmComment + "\n" + entry + "\n", nil
}
