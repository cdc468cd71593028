package vfs

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// DefaultHome is the home directory of the built-in portfolio tree.
const DefaultHome = "/home/alex"

// Filesystem is an immutable snapshot of a directory tree plus the
// configured home path. It is safe to share between sessions.
type Filesystem struct {
	root *Node
	home string

	// view is a read-only afero copy of root backing FS.
	view afero.Fs
}

// New wraps root into a Filesystem. The home path is resolved and must name
// an existing directory. The tree is also mirrored once into a read-only
// afero filesystem for the io/fs view.
func New(root *Node, home string) (*Filesystem, error) {
	if root == nil || !root.IsDir() {
		return nil, fmt.Errorf("filesystem root must be a directory")
	}
	if home == "" {
		home = "/"
	}
	fsys := &Filesystem{root: root, home: ResolvePath(home)}
	if !fsys.IsDirectory(fsys.home) {
		return nil, &PathError{Op: "home", Path: home, Err: ErrNotADirectory}
	}
	view, err := mirror(root)
	if err != nil {
		return nil, err
	}
	fsys.view = view
	return fsys, nil
}

// Root returns the root directory node.
func (fsys *Filesystem) Root() *Node {
	return fsys.root
}

// Home returns the resolved home path.
func (fsys *Filesystem) Home() string {
	return fsys.home
}

// ResolvePath normalises path into an absolute path. Empty and "." segments
// are dropped and ".." pops the previous segment; popping past the root is a
// no-op. The tree is not consulted.
func ResolvePath(path string) string {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, seg)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// ResolvePath is a convenience wrapper around the package-level ResolvePath.
func (fsys *Filesystem) ResolvePath(path string) string {
	return ResolvePath(path)
}

// Join resolves path against current, the way a shell would: absolute paths
// stand alone, "~" and "~/..." are taken from home, anything else is
// relative to current.
func (fsys *Filesystem) Join(path, current string) string {
	switch {
	case path == "":
		return ResolvePath(current)
	case path == "~":
		return fsys.home
	case strings.HasPrefix(path, "~/"):
		return ResolvePath(fsys.home + "/" + path[2:])
	case strings.HasPrefix(path, "/"):
		return ResolvePath(path)
	default:
		return ResolvePath(current + "/" + path)
	}
}

// GetNode walks absolutePath from the root and returns the node it names, or
// nil if any segment is missing.
func (fsys *Filesystem) GetNode(absolutePath string) *Node {
	node := fsys.root
	for _, seg := range strings.Split(absolutePath, "/") {
		if seg == "" {
			continue
		}
		node = node.Child(seg)
		if node == nil {
			return nil
		}
	}
	return node
}

// PathExists reports whether absolutePath names a node. The root always exists.
func (fsys *Filesystem) PathExists(absolutePath string) bool {
	return fsys.GetNode(absolutePath) != nil
}

// IsDirectory reports whether absolutePath names a directory.
func (fsys *Filesystem) IsDirectory(absolutePath string) bool {
	node := fsys.GetNode(absolutePath)
	return node != nil && node.IsDir()
}

// parentPath pops the last segment of a resolved path.
func parentPath(p string) string {
	if p == "/" {
		return "/"
	}
	idx := strings.LastIndex(p, "/")
	if idx <= 0 {
		return "/"
	}
	return p[:idx]
}

// baseName returns the last non-empty segment of p as given, or "/".
func baseName(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "/"
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
