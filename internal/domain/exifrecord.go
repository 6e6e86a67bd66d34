package domain

// ExifRecord is the fixed set of fields the preview panel displays. Every
// field may be empty or zero when the file carries no usable metadata.
type ExifRecord struct {
	Datetime    string // local datetime, "YYYY-MM-DD HH:MM:SS"
	Model       string
	Maker       string
	Lens        string
	FocalLength float64 // millimetres
	ISO         float64
	Aperture    float64 // f-number
	Exposure    string  // human form, e.g. "1/250"
}
