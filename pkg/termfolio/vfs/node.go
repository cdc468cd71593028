// Package vfs implements the read-only virtual filesystem behind the portfolio terminal.
package vfs

import (
	"sort"
	"strings"
)

// Kind identifies which variant of Node a value holds.
type Kind int

const (
	// KindDirectory is a node that owns named children.
	KindDirectory Kind = iota
	// KindFile is a node holding text content.
	KindFile
	// KindExecutable is a marker node with no content.
	KindExecutable
)

// String returns the lowercase name of the kind, e.g. "directory".
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "directory", "dir":
		return KindDirectory, true
	case "file", "":
		return KindFile, true
	case "executable", "exec":
		return KindExecutable, true
	default:
		return 0, false
	}
}

// Entries maps child names to nodes within a directory.
type Entries map[string]*Node

// Node is a single entry of the tree. Nodes must not be modified once they
// have been handed to New.
type Node struct {
	kind     Kind
	content  string
	hidden   bool
	children Entries
}

// NewDirectory creates a directory owning the given entries.
func NewDirectory(entries Entries) *Node {
	if entries == nil {
		entries = Entries{}
	}
	return &Node{kind: KindDirectory, children: entries}
}

// NewFile creates a file with the given content.
func NewFile(content string) *Node {
	return &Node{kind: KindFile, content: content}
}

// NewExecutable creates an executable marker.
func NewExecutable() *Node {
	return &Node{kind: KindExecutable}
}

// WithHidden sets the hidden metadata flag. Listing decisions are made on
// the entry name, so this only matters to callers inspecting Hidden.
func (n *Node) WithHidden(hidden bool) *Node {
	n.hidden = hidden
	return n
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.kind == KindDirectory
}

// Content returns file content. Directories and executables have none.
func (n *Node) Content() string {
	return n.content
}

// Hidden returns the hidden flag the node was built with.
func (n *Node) Hidden() bool {
	return n.hidden
}

// Child returns the named child of a directory, or nil.
func (n *Node) Child(name string) *Node {
	if n.kind != KindDirectory {
		return nil
	}
	return n.children[name]
}

// Names returns the names of a directory's children in lexicographic order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of children of a directory.
func (n *Node) Len() int {
	return len(n.children)
}

// IsHiddenName reports whether a name is hidden, i.e. starts with a dot.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}
