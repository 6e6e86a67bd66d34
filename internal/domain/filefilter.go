package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// RasterExtensions lists the non-raw image formats the import dialog accepts.
// RawExtensions lists the camera raw formats. The two sets overlap on dng on
// purpose: dng can carry either raster or raw payloads.
var RasterExtensions = []string{
	"jpg", "jpeg", "j2c", "jp2", "tif", "tiff", "png", "exr",
	"dng", "heif", "heic", "avi", "avif", "webp",
}

var RawExtensions = []string{
	"3fr", "ari", "arw", "bay", "bmq", "cap", "cine", "cr2",
	"cr3", "crw", "cs1", "dc2", "dcr", "dng", "gpr", "erf",
	"fff", "hdr", "ia", "iiq", "k25", "kc2", "kdc", "mdc",
	"mef", "mos", "mrw", "nef", "nrw", "orf", "ori", "pef",
	"pfm", "pnm", "pxn", "qtk", "raf", "raw", "rdc", "rw2",
	"rwl", "sr2", "srf", "srw", "sti", "x3f",
}

// FileFilter is a named predicate over file paths, matching on the final
// extension only. Matching is case-insensitive and never touches file content.
type FileFilter struct {
	Name string

	exts map[string]struct{}
}

// NewFileFilter builds a filter from a display name and a list of lowercase
// extensions (without the leading dot). Duplicate extensions and empty names
// are rejected.
func NewFileFilter(name string, extensions ...string) (FileFilter, error) {
	if name == "" {
		return FileFilter{}, errors.New("file filter needs a name")
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if _, dup := exts[ext]; dup {
			return FileFilter{}, errors.New("duplicate extension " + ext)
		}
		exts[ext] = struct{}{}
	}
	return FileFilter{Name: name, exts: exts}, nil
}

// Matches reports whether the final path component carries one of the
// filter's extensions, ignoring case.
func (f FileFilter) Matches(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	_, ok := f.exts[ext]
	return ok
}

func mustFilter(name string, extensions ...string) FileFilter {
	f, err := NewFileFilter(name, extensions...)
	if err != nil {
		panic(err)
	}
	return f
}

func dedup(sets ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for _, ext := range set {
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	return out
}

// The three built-in filters offered by the import dialog. RawOnly is the
// default on dialog open.
var (
	FilterAllImages  = mustFilter("All image files", dedup(RawExtensions, RasterExtensions)...)
	FilterRawOnly    = mustFilter("Raw image files", RawExtensions...)
	FilterRasterOnly = mustFilter("Raster image files", RasterExtensions...)
)

// BuiltinFilters returns the filters in the order the dialog offers them.
func BuiltinFilters() []FileFilter {
	return []FileFilter{FilterAllImages, FilterRawOnly, FilterRasterOnly}
}
