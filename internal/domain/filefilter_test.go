package domain

import "testing"

func TestBuiltinFilterSizes(t *testing.T) {
	if len(RasterExtensions) != 14 {
		t.Fatalf("expected 14 raster extensions, got %d", len(RasterExtensions))
	}
	if len(RawExtensions) != 46 {
		t.Fatalf("expected 46 raw extensions, got %d", len(RawExtensions))
	}
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		filter FileFilter
		path   string
		want   bool
	}{
		{FilterRawOnly, "/tmp/a/x.cr2", true},
		{FilterRawOnly, "/tmp/a/y.CR2", true},
		{FilterRawOnly, "/tmp/a/z.jpg", false},
		{FilterRawOnly, "/tmp/a/b/w.nef", true},
		{FilterRasterOnly, "/tmp/a/z.JPG", true},
		{FilterRasterOnly, "/tmp/a/x.cr2", false},
		{FilterAllImages, "/tmp/a/x.cr2", true},
		{FilterAllImages, "/tmp/a/z.jpg", true},
		{FilterAllImages, "/tmp/a/notes.txt", false},
		{FilterAllImages, "/tmp/a/noext", false},
		{FilterAllImages, "/tmp/a/.hidden", false},
	}
	for _, tt := range tests {
		if got := tt.filter.Matches(tt.path); got != tt.want {
			t.Errorf("%s.Matches(%q) = %v, want %v", tt.filter.Name, tt.path, got, tt.want)
		}
	}
}

func TestDngBelongsToBothSets(t *testing.T) {
	if !FilterRawOnly.Matches("a.dng") || !FilterRasterOnly.Matches("a.dng") {
		t.Fatal("dng should match both the raw and the raster filter")
	}
}

func TestNewFileFilterRejectsBadInput(t *testing.T) {
	if _, err := NewFileFilter(""); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := NewFileFilter("dupes", "jpg", "JPG"); err == nil {
		t.Error("duplicate extensions should be rejected")
	}
	if _, err := NewFileFilter("ok", "jpg", "png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
