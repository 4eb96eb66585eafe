// Package write flushes a generated tree to disk, honoring each leaf's
// write policy.
package write

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists a single file.
type Writer interface {
	Write(path string, content []byte) error
}

// DiskWriter writes files atomically beneath a root directory, creating
// parent directories as needed.
type DiskWriter struct {
	root string
}

func NewDiskWriter(root string) *DiskWriter {
	return &DiskWriter{root: root}
}

func (dw *DiskWriter) Write(path string, content []byte) error {
	full := filepath.Join(dw.root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directories for %s: %w", path, err)
	}
	return atomicWrite(full, content)
}

func atomicWrite(path string, content []byte) error {
	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	return os.Rename(tempPath, path)
}
