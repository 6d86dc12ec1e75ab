package lootbag

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Separator splits a path into branch names.
const Separator = "/"

// ErrNotFound is returned when a path does not resolve to an existing branch.
var ErrNotFound = errors.New("branch not found")

// Node is one level of a loot tree: a bag of items plus named sub-branches.
//
// A node is owned by its parent; the tree is acyclic by construction. A
// resolution call never mutates the tree, but authoring calls (Add,
// AddBranch, ...) are not safe to run concurrently with resolution.
type Node struct {
	items    []Item
	branches map[string]*Node
}

// NewNode creates an empty node.
func NewNode() *Node {
	return &Node{}
}

// NodeFrom creates a node preloaded with the given items.
func NodeFrom(items ...Item) *Node {
	n := NewNode()
	for _, it := range items {
		n.Add(it)
	}
	return n
}

// Add stores a copy of the item at this level. Returns the node for chaining.
func (n *Node) Add(item Item) *Node {
	n.items = append(n.items, item.Clone())
	return n
}

// AddIn stores a copy of the item in the branch at the given path.
func (n *Node) AddIn(path string, item Item) error {
	branch, err := n.Branch(path)
	if err != nil {
		return fmt.Errorf("add in %q: %w", path, err)
	}
	branch.Add(item)
	return nil
}

// AddBranch attaches a child under the given name, replacing any existing
// branch with that name. The name must be a single segment, not a path.
// Returns the node for chaining.
func (n *Node) AddBranch(name string, child *Node) *Node {
	if name == "" || strings.Contains(name, Separator) {
		panic(fmt.Sprintf("invalid branch name %q", name))
	}
	if child == nil {
		child = NewNode()
	}
	if n.branches == nil {
		n.branches = make(map[string]*Node)
	}
	n.branches[name] = child
	return n
}

// Branch resolves a /-separated path to a descendant node. The empty string
// and "/" denote the node itself. Returns ErrNotFound if any segment is
// missing.
func (n *Node) Branch(path string) (*Node, error) {
	cur := n
	for _, seg := range splitPath(path) {
		next, ok := cur.branches[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		cur = next
	}
	return cur, nil
}

// Items returns copies of the items held at this level.
func (n *Node) Items() []Item {
	out := make([]Item, len(n.items))
	for i, it := range n.items {
		out[i] = it.Clone()
	}
	return out
}

// Branches returns a copy of the direct child mapping. The nodes
// themselves are shared, not cloned.
func (n *Node) Branches() map[string]*Node {
	return maps.Clone(n.branches)
}

// SelfCount returns the number of items at this level only.
func (n *Node) SelfCount() int {
	return len(n.items)
}

// AllCount returns the number of items at this level and in every
// descendant branch.
func (n *Node) AllCount() int {
	count := len(n.items)
	for _, b := range n.branches {
		count += b.AllCount()
	}
	return count
}

// AllItems returns copies of every item at this level and below.
func (n *Node) AllItems() []Item {
	bag := n.Items()
	for _, name := range n.branchNames() {
		bag = append(bag, n.branches[name].AllItems()...)
	}
	return bag
}

// branchNames returns the direct branch names in sorted order. Map
// iteration order is randomized in Go; every traversal the library does
// goes through this so seeded resolutions stay reproducible.
func (n *Node) branchNames() []string {
	return slices.Sorted(maps.Keys(n.branches))
}

// splitPath breaks a path into non-empty segments. "" and "/" yield none.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, Separator)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, Separator)
}
