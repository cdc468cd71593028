package vfs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gammazero/toposort"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a filesystem snapshot. Entries may be
// listed in any order; directories that are only implied by a deeper path
// are created automatically.
type Manifest struct {
	Home    string          `yaml:"home"`
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry declares a single node.
type ManifestEntry struct {
	Path    string `yaml:"path"`
	Type    string `yaml:"type"`
	Content string `yaml:"content,omitempty"`
	Hidden  bool   `yaml:"hidden,omitempty"`
}

// DecodeManifest reads a YAML manifest from r.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and builds the manifest stored at path.
func LoadManifest(path string, logger zerolog.Logger) (*Filesystem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	m, err := DecodeManifest(f)
	if err != nil {
		return nil, err
	}
	return m.Build(logger)
}

// Build creates the filesystem described by the manifest. Entries are
// created parent-first using a topological order over parent/child edges.
func (m *Manifest) Build(logger zerolog.Logger) (*Filesystem, error) {
	declared := make(map[string]ManifestEntry, len(m.Entries))
	edges := make([]toposort.Edge, 0, len(m.Entries))
	linked := make(map[string]bool)

	for _, entry := range m.Entries {
		if !strings.HasPrefix(entry.Path, "/") {
			return nil, &ManifestError{Path: entry.Path, Reason: "path must be absolute"}
		}
		p := ResolvePath(entry.Path)
		if p == "/" {
			return nil, &ManifestError{Path: entry.Path, Reason: "the root cannot be declared"}
		}
		if _, dup := declared[p]; dup {
			return nil, &ManifestError{Path: entry.Path, Reason: "duplicate path"}
		}
		if _, ok := ParseKind(entry.Type); !ok {
			return nil, &ManifestError{Path: entry.Path, Reason: fmt.Sprintf("unknown type %q", entry.Type)}
		}
		declared[p] = entry

		// Link every ancestor so implied directories take part in the ordering.
		for child := p; child != "/" && !linked[child]; child = parentPath(child) {
			linked[child] = true
			edges = append(edges, toposort.Edge{parentPath(child), child})
		}
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("failed to order manifest entries: %w", err)
	}

	root := NewDirectory(nil)
	nodes := map[string]*Node{"/": root}
	implied := 0

	for _, v := range sorted {
		p, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", v)
		}
		if _, done := nodes[p]; done {
			continue
		}

		parent := nodes[parentPath(p)]
		if parent == nil || !parent.IsDir() {
			return nil, &ManifestError{Path: p, Reason: "parent is not a directory", Cause: ErrNotADirectory}
		}

		var node *Node
		entry, isDeclared := declared[p]
		if !isDeclared {
			node = NewDirectory(nil)
			implied++
		} else {
			kind, _ := ParseKind(entry.Type)
			switch kind {
			case KindDirectory:
				if entry.Content != "" {
					return nil, &ManifestError{Path: entry.Path, Reason: "directories cannot have content"}
				}
				node = NewDirectory(nil)
			case KindExecutable:
				node = NewExecutable()
			default:
				node = NewFile(entry.Content)
			}
			node.hidden = entry.Hidden || IsHiddenName(baseName(p))
		}

		parent.children[baseName(p)] = node
		nodes[p] = node
	}

	home := m.Home
	if home == "" {
		home = "/"
	}
	fsys, err := New(root, home)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest home: %w", err)
	}

	logger.Debug().
		Int("declared", len(declared)).
		Int("implied", implied).
		Str("home", fsys.Home()).
		Msg("built filesystem from manifest")
	return fsys, nil
}
