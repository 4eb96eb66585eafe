package patch

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/cpcf/clickstart/scaffold"
)

// PyprojectManifest holds the fields read back out of a rendered
// pyproject.toml.
type PyprojectManifest struct {
	Project struct {
		Name           string            `toml:"name"`
		RequiresPython string            `toml:"requires-python"`
		Scripts        map[string]string `toml:"scripts"`
	} `toml:"project"`
	Tool struct {
		SetuptoolsSCM struct {
			WriteTo string `toml:"write_to"`
		} `toml:"setuptools_scm"`
	} `toml:"tool"`
}

// ParsePyproject decodes a rendered pyproject.toml.
func ParsePyproject(content string) (*PyprojectManifest, error) {
	var m PyprojectManifest
	if err := toml.Unmarshal([]byte(content), &m); err != nil {
		return nil, fmt.Errorf("invalid pyproject.toml: %w", err)
	}
	return &m, nil
}

// ValidatePyproject rejects rendered pyproject content that is not valid
// TOML or lacks a project name. The content passes through unchanged.
func ValidatePyproject(content string, _ scaffold.Options) (string, error) {
	m, err := ParsePyproject(content)
	if err != nil {
		return "", err
	}
	if m.Project.Name == "" {
		return "", fmt.Errorf("pyproject.toml declares no project name")
	}
	return content, nil
}
