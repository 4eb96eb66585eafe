package scaffold

import "strings"

// Options carries the name mapping for a single generation run. It is
// populated once by the caller and treated as read-only by every action.
type Options map[string]any

// String returns the string value for key, if present and a string.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Project resolves the canonical project name. Lookup order: "project",
// "project_name", "name", then the literal fallback "project".
func (o Options) Project() string {
	for _, key := range []string{"project", "project_name", "name"} {
		if s, ok := o.String(key); ok && s != "" {
			return s
		}
	}
	return "project"
}

// Package resolves the canonical importable package name. Lookup order:
// "package", "package_name", then derivation from the resolved project name.
func (o Options) Package() string {
	for _, key := range []string{"package", "package_name"} {
		if s, ok := o.String(key); ok && s != "" {
			return s
		}
	}
	return DerivePackage(o.Project())
}

// DerivePackage turns a project name into an importable package identifier
// by replacing every hyphen with an underscore.
func DerivePackage(project string) string {
	return strings.ReplaceAll(project, "-", "_")
}
