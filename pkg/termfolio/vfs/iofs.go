package vfs

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"
)

// Permissions given to nodes in the afero copy of the tree.
const (
	dirPerm  fs.FileMode = 0o755
	execPerm fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// mirror copies the node tree into an in-memory afero filesystem and seals
// it read-only. Names are stored unrooted, the way io/fs addresses them.
func mirror(root *Node) (afero.Fs, error) {
	mem := afero.NewMemMapFs()
	if err := mirrorDir(mem, "", root); err != nil {
		return nil, err
	}
	return afero.NewReadOnlyFs(mem), nil
}

func mirrorDir(mem afero.Fs, dir string, node *Node) error {
	for _, name := range node.Names() {
		child := node.Child(name)
		p := path.Join(dir, name)

		if child.IsDir() {
			if err := mem.MkdirAll(p, dirPerm); err != nil {
				return fmt.Errorf("failed to mirror %s: %w", p, err)
			}
			if err := mirrorDir(mem, p, child); err != nil {
				return err
			}
			continue
		}

		perm := filePerm
		if child.Kind() == KindExecutable {
			perm = execPerm
		}
		if err := afero.WriteFile(mem, p, []byte(child.Content()), perm); err != nil {
			return fmt.Errorf("failed to mirror %s: %w", p, err)
		}
		if err := mem.Chmod(p, perm); err != nil {
			return fmt.Errorf("failed to mirror %s: %w", p, err)
		}
	}
	return nil
}

// FS returns a read-only io/fs view of the tree. Names follow io/fs rules:
// unrooted, slash-separated, "." for the root. Executables have mode 0755,
// files 0644 and directories ModeDir|0755.
func (fsys *Filesystem) FS() fs.FS {
	return afero.NewIOFS(fsys.view)
}
