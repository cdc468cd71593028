package vfs

import (
	"fmt"
	"strings"
)

// Box-drawing pieces used by RenderTree and understood by ParseTree.
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentPipe = "│   "
	indentGap  = "    "

	// execMarker ends an executable's name in tree text; a literal trailing
	// star is written escaped.
	execMarker  = "*"
	escapedStar = `\*`
)

// RenderTree renders the non-hidden descendants of the directory at path,
// one per line, each line starting with prefix. Children are sorted and
// directories carry a trailing slash. A name ending in "*" is written with
// the star escaped so ParseTree reads it back as a file. Anything but a directory renders as
// the empty string.
func (fsys *Filesystem) RenderTree(path, prefix string) string {
	node := fsys.GetNode(ResolvePath(path))
	if node == nil || !node.IsDir() {
		return ""
	}
	var b strings.Builder
	renderTree(&b, node, prefix)
	return b.String()
}

func renderTree(b *strings.Builder, dir *Node, prefix string) {
	var names []string
	for _, name := range dir.Names() {
		if !IsHiddenName(name) {
			names = append(names, name)
		}
	}

	for i, name := range names {
		child := dir.Child(name)
		last := i == len(names)-1

		connector, extension := branchMid, indentPipe
		if last {
			connector, extension = branchLast, indentGap
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(escapeTreeName(name))
		if child.IsDir() {
			b.WriteString("/")
			b.WriteString("\n")
			renderTree(b, child, prefix+extension)
			continue
		}
		b.WriteString("\n")
	}
}

func escapeTreeName(name string) string {
	if strings.HasSuffix(name, execMarker) {
		return strings.TrimSuffix(name, execMarker) + escapedStar
	}
	return name
}

// ParseTree builds a directory from a tree listing. It accepts the output of
// RenderTree as well as plain indentation of four spaces per level; tabs and
// other widths are rejected. Names ending in "/" are directories, names
// ending in "*" are executables and a trailing `\*` is a literal star.
// Everything else is an empty file.
func ParseTree(text string) (*Node, error) {
	root := NewDirectory(nil)
	stack := []*Node{root}

	for lineNo, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth, name, err := splitTreeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		if depth == 0 {
			// A bare header such as "/home/alex/" or "." names the listing root.
			if lineNo == 0 || len(stack) == 1 && root.Len() == 0 {
				continue
			}
			return nil, fmt.Errorf("line %d: entry %q has no parent", lineNo+1, name)
		}
		if depth > len(stack) {
			return nil, fmt.Errorf("line %d: entry %q is indented past its parent", lineNo+1, name)
		}
		stack = stack[:depth]
		parent := stack[depth-1]

		var node *Node
		switch {
		case strings.HasSuffix(name, "/"):
			name = strings.TrimSuffix(name, "/")
			node = NewDirectory(nil)
		case strings.HasSuffix(name, escapedStar):
			name = strings.TrimSuffix(name, escapedStar) + execMarker
			node = NewFile("")
		case strings.HasSuffix(name, execMarker):
			name = strings.TrimSuffix(name, execMarker)
			node = NewExecutable()
		default:
			node = NewFile("")
		}
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", lineNo+1)
		}
		if _, exists := parent.children[name]; exists {
			return nil, fmt.Errorf("line %d: duplicate entry %q", lineNo+1, name)
		}
		node.hidden = IsHiddenName(name)
		parent.children[name] = node

		if node.IsDir() {
			stack = append(stack, node)
		}
	}
	return root, nil
}

// splitTreeLine returns the nesting depth of a line (1 for direct children
// of the listing root) and the entry name with decorations removed.
func splitTreeLine(line string) (int, string, error) {
	if !strings.ContainsAny(line, "│├└") {
		name := strings.TrimSpace(line)
		leading := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.Contains(leading, "\t") {
			return 0, name, fmt.Errorf("entry %q is indented with tabs", name)
		}
		indent := len(leading)
		if indent%len(indentGap) != 0 {
			return 0, name, fmt.Errorf("entry %q is indented by %d spaces, not a multiple of %d", name, indent, len(indentGap))
		}
		if indent == 0 {
			// Unindented lines are children of the root unless they look like a header.
			if strings.HasPrefix(name, "/") || name == "." {
				return 0, name, nil
			}
			return 1, name, nil
		}
		return indent/len(indentGap) + 1, name, nil
	}

	depth := 0
	rest := line
	for {
		switch {
		case strings.HasPrefix(rest, indentPipe):
			rest = rest[len(indentPipe):]
			depth++
			continue
		case strings.HasPrefix(rest, indentGap):
			rest = rest[len(indentGap):]
			depth++
			continue
		}
		break
	}
	if strings.HasPrefix(rest, branchMid) || strings.HasPrefix(rest, branchLast) {
		depth++
		rest = rest[len(branchMid):]
	}
	return depth, strings.TrimSpace(rest), nil
}
