// Package importjob performs the actual import once the dialog dispatched a
// validated request: in place, or copying files into the project tree with
// pattern-driven names.
package importjob

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"filmroll/internal/domain"
	"filmroll/internal/logging"
	"filmroll/internal/pattern"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
}

type ExifTimes interface {
	DatetimeOriginal(path string) (time.Time, error)
}

type Library interface {
	AddImage(folder, filename, datetimeTaken string) (int64, error)
}

type Conf interface {
	SetInt(key string, value int)
}

// Job is the import collaborator behind the dialog's fire-and-forget
// dispatch. It owns pattern expansion; the dialog never resolves variables.
type Job struct {
	FS      FileSystem
	Exif    ExifTimes
	Library Library
	Conf    Conf
	Logger  logging.Logger
}

const confLastImage = "ui_last/import_last_image"

// duplicateTries bounds the sequence bumps used to dodge target collisions.
const duplicateTries = 100

func (j *Job) Run(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error) {
	stop := j.Logger.Measure("Import")
	defer stop()

	items := append([]string(nil), req.Items...)
	sort.Strings(items)

	res := domain.ImportResult{LastImageID: -1}
	override := j.overrideTime(req.DatetimeOverride)

	for seq, item := range items {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		taken := j.takenTime(item, override)

		folder := filepath.Dir(item)
		filename := filepath.Base(item)
		if req.Duplicate {
			target, err := j.copyToProject(req, item, taken, seq+1)
			if err != nil {
				j.Logger.Warnf("could not copy %s: %v", item, err)
				continue
			}
			folder = filepath.Dir(target)
			filename = filepath.Base(target)
			res.FilmrollDir = folder
		}

		datetimeTaken := ""
		if !taken.IsZero() {
			datetimeTaken = taken.Format(domain.ExifDatetimeLayout)
		}
		id, err := j.Library.AddImage(folder, filename, datetimeTaken)
		if err != nil {
			j.Logger.Warnf("could not catalogue %s: %v", filename, err)
			continue
		}
		res.Imported++
		res.LastImageID = id
	}

	if j.Conf != nil && res.LastImageID != -1 {
		j.Conf.SetInt(confLastImage, int(res.LastImageID))
	}
	return res, nil
}

func (j *Job) overrideTime(canonical string) time.Time {
	if canonical == "" {
		return time.Time{}
	}
	t, err := time.Parse(domain.ExifDatetimeLayout, canonical)
	if err != nil {
		return time.Time{}
	}
	return t
}

// takenTime prefers the override, then the capture time, then the file's
// modification time.
func (j *Job) takenTime(path string, override time.Time) time.Time {
	if !override.IsZero() {
		return override
	}
	if j.Exif != nil {
		if t, err := j.Exif.DatetimeOriginal(path); err == nil {
			return t
		}
	}
	if info, err := j.FS.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}

func (j *Job) copyToProject(req domain.ImportRequest, src string, taken time.Time, seq int) (string, error) {
	target := j.expandTarget(req, src, taken, seq)
	for try := 0; ; try++ {
		exists, err := j.FS.Exists(target)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		if try >= duplicateTries {
			// Never fall back to an existing target: copying would
			// truncate it.
			return "", fmt.Errorf("could not expand to a unique filename for %s after %d tries", src, duplicateTries)
		}
		seq++
		next := j.expandTarget(req, src, taken, seq)
		if next == target {
			// pattern has no sequence token, nothing left to vary
			return "", fmt.Errorf("target %s already exists", target)
		}
		target = next
	}
	if err := j.FS.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := j.FS.CopyFile(src, target); err != nil {
		return "", err
	}
	return target, nil
}

func (j *Job) expandTarget(req domain.ImportRequest, src string, taken time.Time, seq int) string {
	vars := expansionVars(req.Jobcode, src, taken, seq)
	subdir := pattern.Expand(req.SubdirPattern, vars)
	filename := pattern.Expand(req.FilenamePattern, vars)
	if filename == "" {
		filename = filepath.Base(src)
	}
	return filepath.Join(req.BaseDirectory, subdir, filename)
}

func expansionVars(jobcode, src string, taken time.Time, seq int) map[string]string {
	name := filepath.Base(src)
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	base := strings.TrimSuffix(name, filepath.Ext(name))

	vars := map[string]string{
		"JOBCODE":        jobcode,
		"FILE_NAME":      base,
		"FILE_EXTENSION": ext,
		"SEQUENCE":       fmt.Sprintf("%04d", seq),
	}
	if !taken.IsZero() {
		vars["YEAR"] = taken.Format("2006")
		vars["MONTH"] = taken.Format("01")
		vars["DAY"] = taken.Format("02")
		vars["HOUR"] = taken.Format("15")
		vars["MINUTE"] = taken.Format("04")
		vars["SECOND"] = taken.Format("05")
		vars["EXIF_YEAR"] = taken.Format("2006")
		vars["EXIF_MONTH"] = taken.Format("01")
		vars["EXIF_DAY"] = taken.Format("02")
		vars["EXIF_HOUR"] = taken.Format("15")
		vars["EXIF_MINUTE"] = taken.Format("04")
		vars["EXIF_SECOND"] = taken.Format("05")
	}
	return vars
}
