// Package state tracks which files past generation runs produced.
//
// The manifest is what lets an update run distinguish "this file exists
// because we generated it" from "the user created this file": skip-on-update
// leaves are only skipped for paths recorded here.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

const manifestName = ".clickstart.manifest.json"

type Manifest struct {
	Version   string            `json:"version"`
	RunID     string            `json:"run_id"`
	Generated time.Time         `json:"generated"`
	Generator string            `json:"generator"`
	Project   string            `json:"project"`
	Paths     []string          `json:"paths"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Manager loads and saves the manifest beneath a project root.
type Manager struct {
	root         string
	manifestPath string
}

func NewManager(root string) *Manager {
	return &Manager{
		root:         root,
		manifestPath: filepath.Join(root, manifestName),
	}
}

// Load returns the recorded manifest, or an empty one when no prior run
// exists.
func (m *Manager) Load() (*Manifest, error) {
	data, err := os.ReadFile(m.manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Version: "1", Generator: "clickstart"}, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &manifest, nil
}

// Record merges the written paths into the manifest and saves it with a
// fresh run ID.
func (m *Manager) Record(manifest *Manifest, project string, written []string) error {
	seen := make(map[string]bool, len(manifest.Paths))
	for _, p := range manifest.Paths {
		seen[p] = true
	}
	for _, p := range written {
		if !seen[p] {
			manifest.Paths = append(manifest.Paths, p)
			seen[p] = true
		}
	}
	sort.Strings(manifest.Paths)

	manifest.Version = "1"
	manifest.Generator = "clickstart"
	manifest.Project = project
	manifest.RunID = uuid.NewString()
	manifest.Generated = time.Now()

	return m.save(manifest)
}

// Contains reports whether a prior run produced the path.
func (m *Manifest) Contains(path string) bool {
	for _, p := range m.Paths {
		if p == path {
			return true
		}
	}
	return false
}

func (m *Manager) save(manifest *Manifest) error {
	if err := os.MkdirAll(filepath.Dir(m.manifestPath), 0o755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	tmpPath := m.manifestPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.Rename(tmpPath, m.manifestPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move manifest into place: %w", err)
	}
	return nil
}
