package app

import (
	"path/filepath"

	"filmroll/internal/domain"
	"filmroll/internal/logging"
)

// Traverser expands a user selection of files and directories into the flat
// list of importable file paths. It runs synchronously on the caller's
// goroutine and blocks on filesystem I/O.
type Traverser struct {
	FS     FileSystem
	Logger logging.Logger
}

// Expand walks the selection depth-first in preorder, directory children in
// enumeration order, and emits every regular file the filter accepts.
// Symlinks are followed, but a canonical path the recursion has already
// yielded is skipped, so symlink loops terminate. Per-entry errors are
// absorbed: unreadable directories are logged and skipped, entries that are
// neither file nor directory are skipped silently. The output order is
// stable across identical inputs; the import job re-sorts alphabetically
// anyway.
func (t Traverser) Expand(selection []string, filter domain.FileFilter) []string {
	stop := t.Logger.Measure("Expanding selection")
	defer stop()

	var files []string
	seen := make(map[string]struct{})

	for _, path := range selection {
		info, err := t.FS.Stat(path)
		if err != nil {
			t.Logger.Verbosef("skipping %s: %v", path, err)
			continue
		}
		if info.Mode().IsRegular() {
			// Top-level picks are emitted as selected, duplicates
			// included: the user asked for them explicitly.
			if filter.Matches(path) {
				files = append(files, path)
			}
			continue
		}
		if info.IsDir() {
			files = t.walkDir(path, filter, files, seen)
		}
	}

	t.Logger.Verbosef("Selection expanded to %d files", len(files))
	return files
}

func (t Traverser) walkDir(dir string, filter domain.FileFilter, files []string, seen map[string]struct{}) []string {
	canonical, err := t.FS.Canonical(dir)
	if err != nil {
		canonical = dir
	}
	if _, visited := seen[canonical]; visited {
		return files
	}
	seen[canonical] = struct{}{}

	entries, err := t.FS.ReadDir(dir)
	if err != nil {
		t.Logger.Warnf("cannot read directory %s: %v", dir, err)
		return files
	}

	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		info, err := t.FS.Stat(child) // follows symlinks
		if err != nil {
			t.Logger.Verbosef("skipping %s: %v", child, err)
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if !filter.Matches(child) {
				continue
			}
			canonical, err := t.FS.Canonical(child)
			if err != nil {
				canonical = child
			}
			if _, dup := seen[canonical]; dup {
				continue
			}
			seen[canonical] = struct{}{}
			files = append(files, child)
		case info.IsDir():
			files = t.walkDir(child, filter, files, seen)
		default:
			// devices, sockets, fifos
		}
	}
	return files
}
