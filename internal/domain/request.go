package domain

// ImportRequest is the validated outcome of the import dialog, handed to the
// import job as a single value. Pattern fields are opaque to the dialog: the
// job expands them, the dialog only records and forwards them.
type ImportRequest struct {
	// Items is the expanded, filtered file list. Never empty in a request
	// that reached the job.
	Items []string

	// Duplicate asks the job to copy the files into the project tree and
	// rename them. When false the files are imported in place and the
	// pattern fields below are ignored.
	Duplicate bool

	// DatetimeOverride is the canonical EXIF form of the user's override,
	// empty iff the field was left empty.
	DatetimeOverride string

	Jobcode         string
	BaseDirectory   string
	SubdirPattern   string
	FilenamePattern string

	// LastDirectory is the folder last browsed in the dialog. In
	// non-duplicate mode it becomes the new current collection.
	LastDirectory string
}

// ImportResult is what the job reports back once it ran.
type ImportResult struct {
	Imported    int
	FilmrollDir string // folder of the new filmroll, duplicate mode only
	LastImageID int64  // id of the last registered image, -1 if none
}
