// Package config loads the generator's defaults file (.clickstart.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpcf/clickstart/scaffold"
)

// DefaultFileName is looked up in the target's parent directory unless the
// caller names a file explicitly.
const DefaultFileName = ".clickstart.yaml"

// ErrNotFound marks an absent defaults file; callers fall back to built-in
// defaults.
var ErrNotFound = errors.New("config file not found")

// Validator lets configuration types carry their own validation logic.
type Validator interface {
	Validate() error
}

// Defaults are option values applied to a run before command line flags.
type Defaults struct {
	Project string            `yaml:"project"`
	Package string            `yaml:"package"`
	Layout  string            `yaml:"layout"`
	Extra   map[string]string `yaml:"extra"`
}

// Validate implements the Validator interface.
func (d *Defaults) Validate() error {
	switch d.Layout {
	case "", "modern", "legacy":
	default:
		return fmt.Errorf("layout must be %q or %q, got %q", "modern", "legacy", d.Layout)
	}
	if strings.Contains(d.Package, "-") {
		return fmt.Errorf("package %q is not importable: hyphens are not allowed", d.Package)
	}
	return nil
}

// Apply copies the defaults into an options mapping, skipping keys the
// options already carry.
func (d *Defaults) Apply(opts scaffold.Options) {
	if d.Project != "" {
		if _, ok := opts["project"]; !ok {
			opts["project"] = d.Project
		}
	}
	if d.Package != "" {
		if _, ok := opts["package"]; !ok {
			opts["package"] = d.Package
		}
	}
	for k, v := range d.Extra {
		if _, ok := opts[k]; !ok {
			opts[k] = v
		}
	}
}

// Load reads a YAML defaults file into target. A missing file is reported
// as ErrNotFound; any target implementing Validator is validated after
// decoding.
func Load[T any](path string, target *T) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", absPath, ErrNotFound)
		}
		return fmt.Errorf("failed to read config file %q: %w", absPath, err)
	}

	return decode(data, target)
}

// LoadString decodes YAML configuration from a string. Useful for tests and
// non-file sources.
func LoadString[T any](content string, target *T) error {
	return decode([]byte(content), target)
}

func decode[T any](data []byte, target *T) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return nil
}
