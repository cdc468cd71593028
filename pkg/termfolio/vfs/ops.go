package vfs

import "strings"

// EmptyOrBinary is returned by ReadFile in place of content for executables
// and files without content.
const EmptyOrBinary = "cat: file is empty or binary"

// Entry is one line of a directory listing.
type Entry struct {
	Name   string
	Kind   Kind
	Hidden bool
	Size   int64
}

func newEntry(name string, node *Node) Entry {
	return Entry{
		Name:   name,
		Kind:   node.Kind(),
		Hidden: IsHiddenName(name),
		Size:   int64(len(node.Content())),
	}
}

// ChangeDirectory computes the directory a "cd requested" issued from current
// would land in. Only successful results should be committed by the caller.
// Errors are *PathError values carrying requested unchanged.
func (fsys *Filesystem) ChangeDirectory(requested, current string) (string, error) {
	var target string
	switch requested {
	case "", "~":
		return fsys.home, nil
	case "..":
		return parentPath(current), nil
	case ".":
		return current, nil
	default:
		target = fsys.Join(requested, current)
	}

	node := fsys.GetNode(target)
	if node == nil {
		return "", &PathError{Op: "cd", Path: requested, Err: ErrNotFound}
	}
	if !node.IsDir() {
		return "", &PathError{Op: "cd", Path: requested, Err: ErrNotADirectory}
	}
	return target, nil
}

// List returns the entries of the directory at path, resolved against
// current. Hidden names are dropped unless showHidden is set and the result
// is sorted by name. Listing a file yields a single entry named after the
// last segment of path.
func (fsys *Filesystem) List(path, current string, showHidden bool) ([]Entry, error) {
	target := fsys.Join(path, current)
	node := fsys.GetNode(target)
	if node == nil {
		return nil, &PathError{Op: "ls", Path: path, Err: ErrNotFound}
	}

	if !node.IsDir() {
		if namesDirectory(path) {
			return nil, &PathError{Op: "ls", Path: path, Err: ErrNotADirectory}
		}
		name := baseName(path)
		if path == "" {
			name = baseName(target)
		}
		return []Entry{newEntry(name, node)}, nil
	}

	entries := make([]Entry, 0, node.Len())
	for _, name := range node.Names() {
		if !showHidden && IsHiddenName(name) {
			continue
		}
		entries = append(entries, newEntry(name, node.Child(name)))
	}
	return entries, nil
}

// ReadFile returns the content of the file at path, resolved against current.
func (fsys *Filesystem) ReadFile(path, current string) (string, error) {
	node := fsys.GetNode(fsys.Join(path, current))
	if node == nil {
		return "", &PathError{Op: "cat", Path: path, Err: ErrNotFound}
	}
	if node.IsDir() {
		return "", &PathError{Op: "cat", Path: path, Err: ErrIsADirectory}
	}
	if namesDirectory(path) {
		return "", &PathError{Op: "cat", Path: path, Err: ErrNotADirectory}
	}
	if node.Content() == "" {
		return EmptyOrBinary, nil
	}
	return node.Content(), nil
}

// namesDirectory reports whether path as typed ends in a slash, which only
// a directory may satisfy.
func namesDirectory(path string) bool {
	return strings.HasSuffix(path, "/")
}
