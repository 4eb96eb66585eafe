package write

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cpcf/clickstart/scaffold"
)

// Flusher materializes every leaf of a tree and writes it beneath the
// project root. This is the single point where deferred content producers
// run.
type Flusher struct {
	logger   *slog.Logger
	root     string
	writer   Writer
	priorRun func(path string) bool
}

type FlushOption func(*Flusher)

func WithLogger(logger *slog.Logger) FlushOption {
	return func(f *Flusher) {
		f.logger = logger
	}
}

// WithWriter swaps the destination writer, e.g. for dry runs.
func WithWriter(w Writer) FlushOption {
	return func(f *Flusher) {
		f.writer = w
	}
}

// WithPriorRun supplies knowledge of which paths an earlier generation run
// produced. Skip-on-update leaves are only skipped for such paths.
func WithPriorRun(fn func(path string) bool) FlushOption {
	return func(f *Flusher) {
		f.priorRun = fn
	}
}

func NewFlusher(root string, opts ...FlushOption) *Flusher {
	f := &Flusher{
		logger: slog.Default(),
		root:   root,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.writer == nil {
		f.writer = NewDiskWriter(root)
	}
	return f
}

// Flush writes the tree and returns the relative paths it actually wrote.
// The first failure aborts the flush.
func (f *Flusher) Flush(tree scaffold.Tree, opts scaffold.Options) ([]string, error) {
	var written []string

	err := scaffold.Walk(tree, func(path string, leaf scaffold.Leaf) error {
		exists := fileExists(filepath.Join(f.root, path))

		switch leaf.Policy {
		case scaffold.NoOverwrite:
			if exists {
				f.logger.Debug("skipping existing file", "path", path)
				return nil
			}
		case scaffold.SkipOnUpdate:
			if exists && (f.priorRun == nil || f.priorRun(path)) {
				f.logger.Debug("skipping file from prior run", "path", path)
				return nil
			}
		}

		content, err := leaf.Content.Resolve(opts)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		if err := f.writer.Write(path, []byte(content)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		f.logger.Debug("wrote file", "path", path, "bytes", len(content))
		written = append(written, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return written, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
