// Package thumb renders dialog previews with the file's EXIF orientation
// already applied.
package thumb

import (
	"image"

	"github.com/disintegration/imaging"
)

type Provider struct{}

// Preview decodes the image, honors its orientation tag and scales it down
// to fit width x height. Raw files without an embedded full decode path
// simply fail here; the caller leaves the preview blank.
func (Provider) Preview(path string, width, height int) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return imaging.Fit(img, width, height, imaging.Lanczos), nil
}
