package domain

import (
	"errors"
	"time"
)

// ExifDatetimeLayout is the canonical textual form used everywhere a datetime
// is stored or forwarded.
const ExifDatetimeLayout = "2006:01:02 15:04:05"

// entryLayouts are the shapes accepted from the datetime override field,
// ISO 8601 with or without a time part. The canonical EXIF form itself is
// accepted too so a formatted value survives re-validation unchanged.
var entryLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	ExifDatetimeLayout,
}

var ErrInvalidDatetime = errors.New("datetime does not follow ISO 8601")

// EntryToExif validates user input from the datetime override field and
// returns its canonical EXIF form. An empty entry is valid and yields an
// empty override. The function is total: any string either produces a
// canonical value or ErrInvalidDatetime, never both.
func EntryToExif(entry string) (string, error) {
	if entry == "" {
		return "", nil
	}
	for _, layout := range entryLayouts {
		t, err := time.Parse(layout, entry)
		if err == nil {
			return t.Format(ExifDatetimeLayout), nil
		}
	}
	return "", ErrInvalidDatetime
}
