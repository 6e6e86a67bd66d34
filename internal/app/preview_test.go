package app

import (
	"errors"
	"image"
	"testing"

	"filmroll/internal/domain"
)

type mockThumbs struct {
	img image.Image
	err error
}

func (m mockThumbs) Preview(path string, width, height int) (image.Image, error) {
	return m.img, m.err
}

type mockProbe struct {
	record domain.ExifRecord
	err    error
}

func (m mockProbe) Probe(path string) (domain.ExifRecord, error) {
	return m.record, m.err
}

type mockLibrary struct {
	ids    map[string]int64
	lastID int64
	err    error
}

func (m mockLibrary) ImageID(folder, filename string) (int64, error) {
	if m.err != nil {
		return -1, m.err
	}
	if id, ok := m.ids[folder+"/"+filename]; ok {
		return id, nil
	}
	return -1, nil
}

func (m mockLibrary) LastImportedID() (int64, error) { return m.lastID, m.err }

func previewFS() mockFS {
	return mockFS{files: map[string]bool{"/roll/a.nef": true}}
}

func TestRefreshPopulatesAllFields(t *testing.T) {
	record := domain.ExifRecord{Model: "X-T5", Maker: "Fujifilm", ISO: 400}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := Previewer{
		FS:      previewFS(),
		Thumbs:  mockThumbs{img: img},
		Probe:   mockProbe{record: record},
		Library: mockLibrary{ids: map[string]int64{"/roll/a.nef": 12}},
	}

	got := p.Refresh("/roll/a.nef")
	if got.Thumbnail == nil {
		t.Error("thumbnail missing")
	}
	if got.Exif != record {
		t.Errorf("exif = %+v, want %+v", got.Exif, record)
	}
	if !got.InLibrary || got.ImageID != 12 {
		t.Errorf("library badge wrong: %+v", got)
	}
}

func TestRefreshClearsForNonFile(t *testing.T) {
	p := Previewer{
		FS:      previewFS(),
		Thumbs:  mockThumbs{img: image.NewRGBA(image.Rect(0, 0, 1, 1))},
		Probe:   mockProbe{record: domain.ExifRecord{Model: "stale"}},
		Library: mockLibrary{},
	}
	for _, path := range []string{"", "/roll/missing.nef"} {
		got := p.Refresh(path)
		if got.Thumbnail != nil || got.Exif != (domain.ExifRecord{}) || got.InLibrary {
			t.Errorf("Refresh(%q) should yield a cleared panel, got %+v", path, got)
		}
		if got.ImageID != -1 {
			t.Errorf("cleared panel should carry id -1, got %d", got.ImageID)
		}
	}
}

func TestRefreshSubFailuresLeaveFieldsBlank(t *testing.T) {
	p := Previewer{
		FS:      previewFS(),
		Thumbs:  mockThumbs{err: errors.New("undecodable")},
		Probe:   mockProbe{err: errors.New("no exif")},
		Library: mockLibrary{err: errors.New("db closed")},
	}
	got := p.Refresh("/roll/a.nef")
	if got.Path != "/roll/a.nef" {
		t.Error("preview should still activate for the file")
	}
	if got.Thumbnail != nil || got.Exif != (domain.ExifRecord{}) || got.InLibrary {
		t.Errorf("failed sub-calls should leave fields blank, got %+v", got)
	}
}

func TestRefreshNotInLibrary(t *testing.T) {
	p := Previewer{FS: previewFS(), Library: mockLibrary{}}
	got := p.Refresh("/roll/a.nef")
	if got.InLibrary || got.ImageID != -1 {
		t.Errorf("expected no library badge, got %+v", got)
	}
}
