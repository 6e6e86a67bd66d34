package app

import (
	"context"
	"errors"
	"fmt"

	"filmroll/internal/domain"
	apperrors "filmroll/internal/errors"
	"filmroll/internal/logging"
	"filmroll/internal/pattern"
)

// Conf keys written and read around an import.
const (
	ConfDialogWidth   = "ui_last/import_dialog_width"
	ConfDialogHeight  = "ui_last/import_dialog_height"
	ConfLastDirectory = "ui_last/import_last_directory"
	ConfImportCopy    = "ui_last/import_copy"
	ConfJobcode       = "ui_last/import_jobcode"
	ConfLastImage     = "ui_last/import_last_image"
	ConfBasePattern   = "session/base_directory_pattern"
	ConfSubdirPattern = "session/sub_directory_pattern"
	ConfFilePattern   = "session/filename_pattern"

	confCollectNumRules = "plugins/lighttable/collect/num_rules"
	confCollectItem     = "plugins/lighttable/collect/item0"
	confCollectString   = "plugins/lighttable/collect/string0"
)

// DialogState carries the raw user choices as the dialog holds them, before
// validation.
type DialogState struct {
	Items           []string
	Duplicate       bool
	DatetimeRaw     string
	Jobcode         string
	BaseDirectory   string
	SubdirPattern   string
	FilenamePattern string
	LastDirectory   string
}

// Builder validates dialog state into an ImportRequest and dispatches it.
type Builder struct {
	Conf   ConfStore
	Job    ImportJob
	Views  ViewSwitcher
	Logger logging.Logger
}

// Build validates the dialog state. On InvalidDatetime or EmptySelection the
// request is not constructed and a user-visible message is logged; the
// dialog stays open. Pattern strings pass through verbatim, unexpanded.
func (b Builder) Build(state DialogState) (domain.ImportRequest, error) {
	override := ""
	if state.Duplicate && state.DatetimeRaw != "" {
		canonical, err := domain.EntryToExif(state.DatetimeRaw)
		if err != nil {
			wrapped := apperrors.Wrap(apperrors.InvalidDatetime, "validate", "", err)
			b.Logger.Infof("%s", apperrors.UserMessage(wrapped))
			return domain.ImportRequest{}, wrapped
		}
		override = canonical
	}

	if state.Duplicate {
		for _, p := range []string{state.SubdirPattern, state.FilenamePattern} {
			if err := pattern.Validate(p); err != nil {
				wrapped := apperrors.Wrap(apperrors.InvalidConfig, "validate", "", err)
				b.Logger.Infof("%s", apperrors.UserMessage(wrapped))
				return domain.ImportRequest{}, wrapped
			}
		}
	}

	if len(state.Items) == 0 {
		wrapped := apperrors.Wrap(apperrors.EmptySelection, "validate", "", errors.New("traversal yielded no files"))
		b.Logger.Infof("%s", apperrors.UserMessage(wrapped))
		return domain.ImportRequest{}, wrapped
	}

	req := domain.ImportRequest{
		Items:            state.Items,
		Duplicate:        state.Duplicate,
		DatetimeOverride: override,
		Jobcode:          state.Jobcode,
		BaseDirectory:    state.BaseDirectory,
		SubdirPattern:    state.SubdirPattern,
		FilenamePattern:  state.FilenamePattern,
		LastDirectory:    state.LastDirectory,
	}
	if !req.Duplicate {
		// Patterns only mean something when files are copied.
		req.BaseDirectory = ""
		req.SubdirPattern = ""
		req.FilenamePattern = ""
	}
	return req, nil
}

// Dispatch hands the request to the import job and performs the follow-up
// side effects: pointing the current collection at the right folder and,
// when a single image was imported and its id published, switching to the
// darkroom with that image focused.
func (b Builder) Dispatch(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error) {
	res, err := b.Job.Run(ctx, req)
	if err != nil {
		return domain.ImportResult{}, apperrors.Wrap(apperrors.IOFailure, "import", "", err)
	}

	if !req.Duplicate {
		b.setCollection(req.LastDirectory)
	} else if res.Imported > 0 {
		// In duplicate mode the job chose the new filmroll folder.
		b.setCollection(res.FilmrollDir)
	}

	if res.Imported == 1 {
		imgid := res.LastImageID
		if imgid == -1 {
			imgid = int64(b.Conf.GetInt(ConfLastImage))
		}
		if imgid != -1 && b.Views != nil {
			b.Views.SwitchToDarkroom(imgid)
		}
	}

	b.Logger.Verbosef("Imported %d files", res.Imported)
	return res, nil
}

func (b Builder) setCollection(dirname string) {
	if dirname == "" {
		return
	}
	b.Conf.SetInt(confCollectNumRules, 1)
	b.Conf.SetInt(confCollectItem, 1)
	b.Conf.SetString(confCollectString, fmt.Sprintf("%s*", dirname))
}
