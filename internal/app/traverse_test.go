package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"filmroll/internal/domain"
)

// mockFS describes a fake tree. Entries map paths to kinds; links maps a
// path to the canonical path it resolves to.
type mockFS struct {
	files       map[string]bool // path -> is regular file
	dirs        map[string][]string
	links       map[string]string
	unreadable  map[string]bool
	specials    map[string]bool // neither file nor dir
	readFailure error
}

func (m mockFS) Stat(path string) (fs.FileInfo, error) {
	if target, ok := m.links[path]; ok {
		path = target
	}
	if m.specials[path] {
		return mockFileInfo{name: filepath.Base(path), mode: fs.ModeSocket}, nil
	}
	if m.files[path] {
		return mockFileInfo{name: filepath.Base(path)}, nil
	}
	if _, ok := m.dirs[path]; ok {
		return mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir}, nil
	}
	return nil, fs.ErrNotExist
}

func (m mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if target, ok := m.links[path]; ok {
		path = target
	}
	if m.unreadable[path] {
		err := m.readFailure
		if err == nil {
			err = fs.ErrPermission
		}
		return nil, err
	}
	names, ok := m.dirs[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		child := filepath.Join(path, name)
		isDir := false
		if _, ok := m.dirs[child]; ok {
			isDir = true
		}
		if target, ok := m.links[child]; ok {
			_, isDir = m.dirs[target]
		}
		entries = append(entries, mockDirEntry{name: name, isDir: isDir})
	}
	return entries, nil
}

func (m mockFS) Canonical(path string) (string, error) {
	if target, ok := m.links[path]; ok {
		return target, nil
	}
	return path, nil
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name string
	mode fs.FileMode
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m mockFileInfo) Sys() interface{}   { return nil }

func TestExpandRawFolderRecursively(t *testing.T) {
	m := mockFS{
		files: map[string]bool{
			"/tmp/a/x.cr2":   true,
			"/tmp/a/y.CR2":   true,
			"/tmp/a/z.jpg":   true,
			"/tmp/a/b/w.nef": true,
		},
		dirs: map[string][]string{
			"/tmp/a":   {"x.cr2", "y.CR2", "z.jpg", "b"},
			"/tmp/a/b": {"w.nef"},
		},
	}
	tr := Traverser{FS: m}
	got := tr.Expand([]string{"/tmp/a"}, domain.FilterRawOnly)
	want := []string{"/tmp/a/x.cr2", "/tmp/a/y.CR2", "/tmp/a/b/w.nef"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandEmptySelection(t *testing.T) {
	tr := Traverser{FS: mockFS{}}
	if got := tr.Expand(nil, domain.FilterRawOnly); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestExpandEveryResultPassesFilter(t *testing.T) {
	m := mockFS{
		files: map[string]bool{
			"/d/a.nef": true,
			"/d/b.txt": true,
			"/d/c.jpg": true,
		},
		dirs: map[string][]string{"/d": {"a.nef", "b.txt", "c.jpg"}},
	}
	tr := Traverser{FS: m}
	for _, filter := range domain.BuiltinFilters() {
		for _, path := range tr.Expand([]string{"/d"}, filter) {
			if !filter.Matches(path) {
				t.Errorf("%s yielded %s which does not match", filter.Name, path)
			}
		}
	}
}

func TestExpandSkipsUnreadableDirectory(t *testing.T) {
	m := mockFS{
		files: map[string]bool{"/d/a.nef": true},
		dirs: map[string][]string{
			"/d":        {"a.nef", "locked"},
			"/d/locked": {"b.nef"},
		},
		unreadable:  map[string]bool{"/d/locked": true},
		readFailure: errors.New("permission denied"),
	}
	tr := Traverser{FS: m}
	got := tr.Expand([]string{"/d"}, domain.FilterRawOnly)
	if !reflect.DeepEqual(got, []string{"/d/a.nef"}) {
		t.Fatalf("unreadable dir should be skipped, got %v", got)
	}
}

func TestExpandBoundsSymlinkLoops(t *testing.T) {
	// /d/loop is a symlink back to /d: the traversal must terminate and
	// yield each file once.
	m := mockFS{
		files: map[string]bool{"/d/a.nef": true},
		dirs:  map[string][]string{"/d": {"a.nef", "loop"}},
		links: map[string]string{"/d/loop": "/d"},
	}
	tr := Traverser{FS: m}
	got := tr.Expand([]string{"/d"}, domain.FilterRawOnly)
	if !reflect.DeepEqual(got, []string{"/d/a.nef"}) {
		t.Fatalf("symlink loop not bounded, got %v", got)
	}
}

func TestExpandSkipsSpecialFiles(t *testing.T) {
	m := mockFS{
		files:    map[string]bool{"/d/a.nef": true},
		dirs:     map[string][]string{"/d": {"a.nef", "weird.nef"}},
		specials: map[string]bool{"/d/weird.nef": true},
	}
	tr := Traverser{FS: m}
	got := tr.Expand([]string{"/d"}, domain.FilterRawOnly)
	if !reflect.DeepEqual(got, []string{"/d/a.nef"}) {
		t.Fatalf("special file should be skipped silently, got %v", got)
	}
}

func TestExpandKeepsSelectionDuplicates(t *testing.T) {
	m := mockFS{files: map[string]bool{"/d/a.nef": true}}
	tr := Traverser{FS: m}
	got := tr.Expand([]string{"/d/a.nef", "/d/a.nef"}, domain.FilterRawOnly)
	if len(got) != 2 {
		t.Fatalf("duplicates in the selection itself should survive, got %v", got)
	}
}

func TestExpandStableAcrossRuns(t *testing.T) {
	m := mockFS{
		files: map[string]bool{"/d/a.nef": true, "/d/b.nef": true, "/d/s/c.nef": true},
		dirs: map[string][]string{
			"/d":   {"b.nef", "s", "a.nef"},
			"/d/s": {"c.nef"},
		},
	}
	tr := Traverser{FS: m}
	first := tr.Expand([]string{"/d"}, domain.FilterRawOnly)
	second := tr.Expand([]string{"/d"}, domain.FilterRawOnly)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("order not stable: %v vs %v", first, second)
	}
}
