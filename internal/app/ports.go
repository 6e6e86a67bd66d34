package app

import (
	"context"
	"image"
	"io/fs"

	"filmroll/internal/domain"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	// Canonical resolves symlinks so the traversal can spot a path it has
	// already seen under another name.
	Canonical(path string) (string, error)
}

// ThumbnailProvider renders an oriented preview of at most the given
// dimensions, or fails.
type ThumbnailProvider interface {
	Preview(path string, width, height int) (image.Image, error)
}

// MetadataProbe extracts the fixed EXIF record from a file.
type MetadataProbe interface {
	Probe(path string) (domain.ExifRecord, error)
}

// LibraryIndex answers whether a (folder, filename) pair is already
// catalogued. An id of -1 means "not in the library".
type LibraryIndex interface {
	ImageID(folder, filename string) (int64, error)
	LastImportedID() (int64, error)
}

// ConfStore is the typed key/value persistence for ui_last and session
// values. Reads fall back to zero values; errors never surface here.
type ConfStore interface {
	GetString(key string) string
	SetString(key, value string)
	GetInt(key string) int
	SetInt(key string, value int)
	GetBool(key string) bool
	SetBool(key string, value bool)
}

// ImportJob receives a validated request and performs the actual import.
type ImportJob interface {
	Run(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error)
}

// ViewSwitcher lets the dialog hand a single freshly imported image straight
// to the darkroom.
type ViewSwitcher interface {
	SwitchToDarkroom(imageID int64)
}
