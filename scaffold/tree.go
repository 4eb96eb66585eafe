// Package scaffold provides the in-memory file tree that generation actions operate on.
package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// Policy governs what happens when a generated leaf collides with a file
// that already exists on disk at flush time.
type Policy int

const (
	// Overwrite replaces any existing file.
	Overwrite Policy = iota
	// NoOverwrite leaves an existing file untouched.
	NoOverwrite
	// SkipOnUpdate writes the file on first generation but skips it when a
	// previous run already produced it.
	SkipOnUpdate
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case NoOverwrite:
		return "no-overwrite"
	case SkipOnUpdate:
		return "skip-on-update"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Producer yields file content once generation options are known.
type Producer func(Options) (string, error)

// Content is either literal text or a deferred producer of text.
type Content struct {
	literal  string
	producer Producer
	deferred bool
}

// Text wraps literal content.
func Text(s string) Content {
	return Content{literal: s}
}

// Deferred wraps a producer resolved at materialization time.
func Deferred(p Producer) Content {
	return Content{producer: p, deferred: true}
}

// Resolve materializes the content. Literal content resolves to itself;
// deferred content invokes its producer with the given options.
func (c Content) Resolve(opts Options) (string, error) {
	if !c.deferred {
		return c.literal, nil
	}
	if c.producer == nil {
		return "", fmt.Errorf("deferred content has no producer")
	}
	return c.producer(opts)
}

// Deferred reports whether the content is still a producer.
func (c Content) Deferred() bool {
	return c.deferred
}

// Leaf is a single file entry: its content plus the write policy applied
// when the tree is flushed.
type Leaf struct {
	Content Content
	Policy  Policy
}

// File is a convenience constructor for a literal leaf.
func File(content string, policy Policy) Leaf {
	return Leaf{Content: Text(content), Policy: policy}
}

// Node is either a Leaf or a nested Tree.
type Node interface {
	isNode()
}

// Tree maps path segments to leaves or subtrees.
type Tree map[string]Node

func (Leaf) isNode() {}
func (Tree) isNode() {}

// Merge overlays src onto dst and returns the combined tree. Directory nodes
// merge by key union, recursing into shared keys; a leaf in src replaces
// whatever dst held at that key. Neither input is mutated.
func Merge(dst, src Tree) Tree {
	out := make(Tree, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcSub, srcIsTree := v.(Tree)
		dstSub, dstIsTree := out[k].(Tree)
		if srcIsTree && dstIsTree {
			out[k] = Merge(dstSub, srcSub)
			continue
		}
		if srcIsTree {
			// Copy so later merges cannot alias the caller's map.
			out[k] = Merge(Tree{}, srcSub)
			continue
		}
		out[k] = v
	}
	return out
}

// Reject removes the leaf at the slash-separated path if present. A missing
// path is a no-op. Emptied ancestor directories are kept. The input tree is
// not mutated.
func Reject(tree Tree, path string) Tree {
	segs := splitPath(path)
	if len(segs) == 0 {
		return tree
	}
	return rejectSegs(tree, segs)
}

func rejectSegs(tree Tree, segs []string) Tree {
	node, ok := tree[segs[0]]
	if !ok {
		return tree
	}
	out := make(Tree, len(tree))
	for k, v := range tree {
		out[k] = v
	}
	if len(segs) == 1 {
		delete(out, segs[0])
		return out
	}
	sub, ok := node.(Tree)
	if !ok {
		// Intermediate segment resolves to a file: nothing to remove.
		return tree
	}
	out[segs[0]] = rejectSegs(sub, segs[1:])
	return out
}

// Lookup returns the leaf at the slash-separated path.
func Lookup(tree Tree, path string) (Leaf, bool) {
	segs := splitPath(path)
	var node Node = tree
	for _, seg := range segs {
		sub, ok := node.(Tree)
		if !ok {
			return Leaf{}, false
		}
		node, ok = sub[seg]
		if !ok {
			return Leaf{}, false
		}
	}
	leaf, ok := node.(Leaf)
	return leaf, ok
}

// Put places a leaf at the slash-separated path, creating intermediate
// directories as needed, and returns the updated tree.
func Put(tree Tree, path string, leaf Leaf) Tree {
	segs := splitPath(path)
	add := Tree{}
	cur := add
	for i, seg := range segs {
		if i == len(segs)-1 {
			cur[seg] = leaf
			break
		}
		next := Tree{}
		cur[seg] = next
		cur = next
	}
	return Merge(tree, add)
}

// Walk visits every leaf in path-sorted order.
func Walk(tree Tree, fn func(path string, leaf Leaf) error) error {
	return walk(tree, "", fn)
}

func walk(tree Tree, prefix string, fn func(string, Leaf) error) error {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "/" + k
		}
		switch n := tree[k].(type) {
		case Leaf:
			if err := fn(path, n); err != nil {
				return err
			}
		case Tree:
			if err := walk(n, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
