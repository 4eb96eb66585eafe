package templates

import (
	"fmt"
	"io/fs"
	"sync"
)

type loader struct {
	mu    sync.RWMutex
	texts map[string]string
}

var cache = &loader{texts: make(map[string]string)}

// Get returns the raw text of a bundled template by logical name, e.g.
// "cli.py" or "Makefile". Loaded templates are cached for the process
// lifetime.
func Get(name string) (string, error) {
	cache.mu.RLock()
	if text, ok := cache.texts[name]; ok {
		cache.mu.RUnlock()
		return text, nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if text, ok := cache.texts[name]; ok {
		return text, nil
	}

	raw, err := fs.ReadFile(bundle, "files/"+name)
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", name, err)
	}

	text := string(raw)
	cache.texts[name] = text
	return text, nil
}

// Names lists every bundled template.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(bundle, "files")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
