package errors

import "fmt"

type Kind string

const (
	InvalidConfig        Kind = "invalid_config"
	InvalidDatetime      Kind = "invalid_datetime"
	EmptySelection       Kind = "empty_selection"
	TraversalEntry       Kind = "traversal_entry"
	MetadataUnavailable  Kind = "metadata_unavailable"
	ThumbnailUnavailable Kind = "thumbnail_unavailable"
	IOFailure            Kind = "io_failure"
	Internal             Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Kind == kind
}

func UserMessage(err error) string {
	appErr, ok := err.(*AppError)
	if !ok {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case InvalidDatetime:
		return "Invalid date/time format for import. Dates follow ISO 8601, like YYYY-MM-DD, YYYY-MM-DD HH:mm, YYYY-MM-DD HH:mm:ss or YYYY-MM-DDTHH:mm:ss."
	case EmptySelection:
		return "No files to import. Check your selection."
	case MetadataUnavailable:
		return fmt.Sprintf("Could not read metadata: %s", appErr.Path)
	case ThumbnailUnavailable:
		return fmt.Sprintf("Could not build a preview: %s", appErr.Path)
	case IOFailure:
		if appErr.Path != "" {
			return fmt.Sprintf("I/O error: %s", appErr.Path)
		}
		return fmt.Sprintf("I/O error: %v", appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
