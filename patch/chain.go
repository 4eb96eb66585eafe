// Package patch provides ordered, composable edits applied to generated
// file content before the tree is flushed.
//
// Patches are pure: each takes the previous content and returns new content,
// so a chain is a left fold over its patch sequence. Every patch shipped
// here is idempotent, which keeps regenerate/update runs from duplicating
// inserted entries.
package patch

import (
	"fmt"

	"github.com/cpcf/clickstart/scaffold"
)

// Patch transforms file content using the generation options.
// Implementations should be stateless and leave content they do not
// recognize unchanged.
type Patch interface {
	Apply(content string, opts scaffold.Options) (string, error)
}

// PatchFunc adapts a function to the Patch interface.
type PatchFunc func(content string, opts scaffold.Options) (string, error)

// Apply implements the Patch interface.
func (f PatchFunc) Apply(content string, opts scaffold.Options) (string, error) {
	return f(content, opts)
}

// Chain executes multiple patches in the order they were added.
type Chain struct {
	patches []Patch
}

// NewChain creates a chain over the given patches.
func NewChain(patches ...Patch) *Chain {
	return &Chain{patches: patches}
}

// Add appends a patch to the end of the chain.
func (c *Chain) Add(p Patch) {
	c.patches = append(c.patches, p)
}

// AddFunc appends a function as a patch to the end of the chain.
func (c *Chain) AddFunc(fn func(content string, opts scaffold.Options) (string, error)) {
	c.patches = append(c.patches, PatchFunc(fn))
}

// Apply folds all patches over the content. The first failing patch stops
// the fold and its error is returned.
func (c *Chain) Apply(content string, opts scaffold.Options) (string, error) {
	result := content
	for i, p := range c.patches {
		patched, err := p.Apply(result, opts)
		if err != nil {
			return "", fmt.Errorf("patch %d failed: %w", i, err)
		}
		result = patched
	}
	return result, nil
}

// Len returns the number of patches in the chain.
func (c *Chain) Len() int {
	return len(c.patches)
}
