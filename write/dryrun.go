package write

import "os"

// DryRunWriter records what a flush would do without touching disk.
type DryRunWriter struct {
	changes []Change
}

type Change struct {
	Path   string
	Action string
	Size   int
}

func NewDryRunWriter() *DryRunWriter {
	return &DryRunWriter{}
}

func (drw *DryRunWriter) Write(path string, content []byte) error {
	action := "create"
	if _, err := os.Stat(path); err == nil {
		action = "update"
	}
	drw.changes = append(drw.changes, Change{Path: path, Action: action, Size: len(content)})
	return nil
}

// Changes lists the recorded writes in flush order.
func (drw *DryRunWriter) Changes() []Change {
	return drw.changes
}
