package presentation

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"filmroll/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintExpansion reports what the traversal found, before dispatch. Used by
// the non-interactive import command; the dialog shows the same information
// in its status line.
func (p Printer) PrintExpansion(items []string, filter domain.FileFilter) {
	fmt.Fprintf(p.Writer, "Importing (%s):\n", filter.Name)
	fmt.Fprintln(p.Writer)

	for _, line := range formatItemLines(items) {
		fmt.Fprintln(p.Writer, line)
	}

	raw, raster := countKinds(items)
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "%d files selected (%d raw, %d raster).\n", len(items), raw, raster)
}

// PrintResult reports what the import job did.
func (p Printer) PrintResult(req domain.ImportRequest, res domain.ImportResult) {
	if req.Duplicate {
		fmt.Fprintf(p.Writer, "Imported %d of %d files into %s.\n", res.Imported, len(req.Items), res.FilmrollDir)
	} else {
		fmt.Fprintf(p.Writer, "Imported %d of %d files in place.\n", res.Imported, len(req.Items))
	}
	if p.Verbose && res.LastImageID != -1 {
		fmt.Fprintf(p.Writer, "Last catalogued image id: %d\n", res.LastImageID)
	}
}

func formatItemLines(items []string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "Import "+filepath.Base(item))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

func countKinds(items []string) (raw, raster int) {
	for _, item := range items {
		if domain.FilterRawOnly.Matches(item) {
			raw++
		} else if domain.FilterRasterOnly.Matches(item) {
			raster++
		}
	}
	return raw, raster
}

func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
