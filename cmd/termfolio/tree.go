package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termfolio/pkg/termfolio/vfs"
)

func newTreeCommand(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print a directory tree",
		Long: `Print the tree below path (default "/") of the configured filesystem.
With --from, the tree is read from a tree-text file instead, which checks
that the file parses and shows it normalised.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			var (
				fsys *vfs.Filesystem
				err  error
			)
			if from != "" {
				fsys, err = loadTreeFile(from)
			} else {
				fsys, err = a.filesystem()
			}
			if err != nil {
				return err
			}

			resolved := fsys.Join(path, fsys.Home())
			switch {
			case !fsys.PathExists(resolved):
				return errors.New((&vfs.PathError{Op: "tree", Path: path, Err: vfs.ErrNotFound}).Message())
			case !fsys.IsDirectory(resolved):
				return errors.New((&vfs.PathError{Op: "tree", Path: path, Err: vfs.ErrNotADirectory}).Message())
			}

			header := resolved + "/"
			if resolved == "/" {
				header = "/"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header)
			fmt.Fprint(out, fsys.RenderTree(resolved, ""))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "read the tree from a tree-text file")

	return cmd
}

func loadTreeFile(path string) (*vfs.Filesystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}
	root, err := vfs.ParseTree(strings.TrimRight(string(data), "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse tree file %s: %w", path, err)
	}
	return vfs.New(root, "/")
}
