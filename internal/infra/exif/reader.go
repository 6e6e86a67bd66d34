package exif

import (
	"fmt"
	"os"
	"strings"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	"filmroll/internal/domain"
)

// Reader extracts the preview panel's ExifRecord from a file.
type Reader struct{}

func (Reader) Probe(path string) (domain.ExifRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.ExifRecord{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return domain.ExifRecord{}, err
	}

	record := domain.ExifRecord{}

	if tm, err := x.DateTime(); err == nil {
		record.Datetime = tm.Format("2006-01-02 15:04:05")
	}
	if v, ok := stringField(x, goexif.Model); ok {
		record.Model = v
	}
	if v, ok := stringField(x, goexif.Make); ok {
		record.Maker = v
	}
	if v, ok := stringField(x, goexif.LensModel); ok {
		record.Lens = v
	}
	if v, ok := ratField(x, goexif.FocalLength); ok {
		record.FocalLength = v
	}
	if tag, err := x.Get(goexif.ISOSpeedRatings); err == nil {
		if v, err := tag.Int(0); err == nil {
			record.ISO = float64(v)
		}
	}
	if v, ok := ratField(x, goexif.FNumber); ok {
		record.Aperture = v
	}
	if tag, err := x.Get(goexif.ExposureTime); err == nil {
		if num, denom, err := tag.Rat2(0); err == nil && denom != 0 {
			record.Exposure = formatExposure(num, denom)
		}
	}

	return record, nil
}

// DatetimeOriginal returns the capture time, preferring DateTimeOriginal
// over the generic DateTime tag. The import job uses it for pattern
// expansion when no override time is given.
func (Reader) DatetimeOriginal(path string) (time.Time, error) {
	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, err
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			if parsed, err := time.Parse(domain.ExifDatetimeLayout, str); err == nil {
				return parsed, nil
			}
		}
	}
	return x.DateTime()
}

func stringField(x *goexif.Exif, name goexif.FieldName) (string, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return "", false
	}
	v, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(v, "\x00")), true
}

func ratField(x *goexif.Exif, name goexif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	num, denom, err := tag.Rat2(0)
	if err != nil || denom == 0 {
		return 0, false
	}
	return float64(num) / float64(denom), true
}

func formatExposure(num, denom int64) string {
	if num == 1 {
		return fmt.Sprintf("1/%d", denom)
	}
	return fmt.Sprintf("%.1f''", float64(num)/float64(denom))
}
