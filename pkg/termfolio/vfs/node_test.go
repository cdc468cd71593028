package vfs

import "testing"

func TestKindString(t *testing.T) {
	for _, kind := range []Kind{KindDirectory, KindFile, KindExecutable} {
		parsed, ok := ParseKind(kind.String())
		if !ok || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", kind.String(), parsed, ok, kind)
		}
	}
	if _, ok := ParseKind("socket"); ok {
		t.Error("ParseKind should reject unknown kinds")
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("unexpected name for invalid kind: %s", Kind(42))
	}
}

func TestNodeAccessors(t *testing.T) {
	dir := NewDirectory(Entries{
		"b":   NewFile("x"),
		"a":   NewExecutable(),
		".c":  NewFile(""),
		"sub": NewDirectory(nil),
	})

	names := dir.Names()
	want := []string{".c", "a", "b", "sub"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if dir.Child("b").Content() != "x" {
		t.Error("file content not preserved")
	}
	if dir.Child("b").Child("anything") != nil {
		t.Error("files have no children")
	}
	if !IsHiddenName(".c") || IsHiddenName("c.") {
		t.Error("hidden names are those with a leading dot")
	}
}

func TestPathHelpers(t *testing.T) {
	tests := []struct {
		in, parent, base string
	}{
		{"/", "/", "/"},
		{"/etc", "/", "etc"},
		{"/home/alex", "/home", "alex"},
	}
	for _, tt := range tests {
		if got := parentPath(tt.in); got != tt.parent {
			t.Errorf("parentPath(%q) = %q, want %q", tt.in, got, tt.parent)
		}
		if got := baseName(tt.in); got != tt.base {
			t.Errorf("baseName(%q) = %q, want %q", tt.in, got, tt.base)
		}
	}
	if got := baseName("projects/site.md/"); got != "site.md" {
		t.Errorf("baseName should ignore trailing slashes, got %q", got)
	}
}
