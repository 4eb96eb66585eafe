// Package templates bundles the file templates shipped with the generator.
package templates

import "embed"

//go:embed files
var bundle embed.FS
