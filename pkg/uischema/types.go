package uischema

import "strings"

// Node is one entry in the path-keyed metadata tree: options for the
// attribute occurrence at this path plus children for nested attributes.
type Node struct {
	Options  map[string]any   `yaml:"options" json:"options"`
	Children map[string]*Node `yaml:"attributes" json:"attributes"`
}

// Tree is an externally supplied metadata overlay keyed by attribute paths.
// It is one of the metadata resolver's inputs; it never stores resolved
// results.
type Tree struct {
	children map[string]*Node
}

// NewTree builds a tree from top-level attribute nodes.
func NewTree(children map[string]*Node) *Tree {
	return &Tree{children: children}
}

// Lookup walks the tree along path and returns the options declared at the
// terminal node.
func (t *Tree) Lookup(path []string) (map[string]any, bool) {
	if t == nil || len(path) == 0 {
		return nil, false
	}
	children := t.children
	var node *Node
	for _, segment := range path {
		if children == nil {
			return nil, false
		}
		next, ok := children[segment]
		if !ok || next == nil {
			return nil, false
		}
		node = next
		children = next.Children
	}
	if len(node.Options) == 0 {
		return nil, false
	}
	return node.Options, true
}

// Empty reports whether the tree carries no nodes.
func (t *Tree) Empty() bool {
	return t == nil || len(t.children) == 0
}

// merge folds other into t, erroring on conflicting option keys for the same
// path so a stray duplicate file cannot silently shadow configuration.
func (t *Tree) merge(other *Tree, source string) error {
	if other == nil {
		return nil
	}
	if t.children == nil {
		t.children = make(map[string]*Node)
	}
	return mergeNodes(t.children, other.children, nil, source)
}

// PathKey renders a path the way override maps key it.
func PathKey(path []string) string {
	return strings.Join(path, ".")
}
