package app

import (
	"image"
	"path/filepath"

	"filmroll/internal/domain"
	"filmroll/internal/logging"
)

// PreviewSize is the logical pixel size of the dialog's preview thumbnail.
const PreviewSize = 180

// Preview is the state of the dialog's preview panel for one file. The zero
// value is the cleared panel.
type Preview struct {
	Path      string
	Thumbnail image.Image
	Exif      domain.ExifRecord
	InLibrary bool
	ImageID   int64
}

// Previewer populates the preview panel when the browser's preview file
// changes. Every refresh starts from a cleared panel so nothing from the
// previous selection can leak; failing sub-calls leave their fields blank
// without cancelling the rest.
type Previewer struct {
	FS      FileSystem
	Thumbs  ThumbnailProvider
	Probe   MetadataProbe
	Library LibraryIndex
	Logger  logging.Logger
}

func (p Previewer) Refresh(path string) Preview {
	preview := Preview{ImageID: -1}
	if path == "" {
		return preview
	}
	info, err := p.FS.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return preview
	}
	preview.Path = path

	if p.Thumbs != nil {
		thumb, err := p.Thumbs.Preview(path, PreviewSize, PreviewSize)
		if err != nil {
			p.Logger.Verbosef("no preview for %s: %v", path, err)
		} else {
			preview.Thumbnail = thumb
		}
	}

	if p.Probe != nil {
		record, err := p.Probe.Probe(path)
		if err != nil {
			p.Logger.Verbosef("no metadata for %s: %v", path, err)
		} else {
			preview.Exif = record
		}
	}

	if p.Library != nil {
		id, err := p.Library.ImageID(filepath.Dir(path), filepath.Base(path))
		if err != nil {
			p.Logger.Verbosef("library lookup failed for %s: %v", path, err)
		} else if id != -1 {
			preview.InLibrary = true
			preview.ImageID = id
		}
	}

	return preview
}
