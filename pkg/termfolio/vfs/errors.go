package vfs

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned when a path has no node. It is fs.ErrNotExist so
	// errors.Is works with either.
	ErrNotFound = fs.ErrNotExist
	// ErrNotADirectory is returned when a directory was required.
	ErrNotADirectory = errors.New("not a directory")
	// ErrIsADirectory is returned when file content was requested from a directory.
	ErrIsADirectory = errors.New("is a directory")
)

// PathError records a failed filesystem operation and the path as the caller
// supplied it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Message formats the error the way a shell reports it, e.g.
// "cd: docs: No such file or directory".
func (e *PathError) Message() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		if e.Op == "ls" {
			return fmt.Sprintf("ls: cannot access '%s': No such file or directory", e.Path)
		}
		return fmt.Sprintf("%s: %s: No such file or directory", e.Op, e.Path)
	case errors.Is(e.Err, ErrNotADirectory):
		if e.Op == "ls" {
			return fmt.Sprintf("ls: cannot access '%s': Not a directory", e.Path)
		}
		return fmt.Sprintf("%s: %s: Not a directory", e.Op, e.Path)
	case errors.Is(e.Err, ErrIsADirectory):
		return fmt.Sprintf("%s: %s: Is a directory", e.Op, e.Path)
	default:
		return e.Error()
	}
}

// ManifestError reports a problem with one manifest entry.
type ManifestError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *ManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("manifest entry %q: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("manifest entry %q: %s", e.Path, e.Reason)
}

func (e *ManifestError) Unwrap() error {
	return e.Cause
}
