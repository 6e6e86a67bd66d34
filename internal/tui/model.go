package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"filmroll/internal/app"
	"filmroll/internal/domain"
	apperrors "filmroll/internal/errors"
	"filmroll/internal/pattern"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the import dialog
type Phase int

const (
	PhaseBrowse Phase = iota
	PhaseImporting
	PhaseDone
	PhaseError
)

// Messages for the import dialog
type (
	PreviewMsg struct {
		Path    string
		Preview app.Preview
	}
	ImportDoneMsg struct {
		Request domain.ImportRequest
		Result  domain.ImportResult
	}
	ErrorMsg struct {
		Err error
	}
)

// The text input fields of the dialog, in focus order.
const (
	fieldDatetime = iota
	fieldJobcode
	fieldBase
	fieldSubdir
	fieldFilename
	fieldCount
)

// ImportConfig wires the dialog to the application layer.
type ImportConfig struct {
	StartDir  string
	Traverser app.Traverser
	Builder   app.Builder
	Previewer app.Previewer
	Conf      app.ConfStore
}

type dirEntry struct {
	name  string
	path  string
	isDir bool
}

// Model is the import dialog model
type Model struct {
	config ImportConfig
	Phase  Phase

	dir       string
	entries   []dirEntry
	cursor    int
	selected  map[string]bool
	filters   []domain.FileFilter
	filterIdx int

	duplicate       bool
	inputs          [fieldCount]textinput.Model
	focus           int // -1 while the browser has focus
	datetimeInvalid bool

	preview app.Preview
	spinner spinner.Model

	Request  domain.ImportRequest
	Result   domain.ImportResult
	Err      error
	Quitting bool
	width    int
	height   int
}

// NewModel creates the import dialog, restoring the sticky dialog fields
// from the conf store.
func NewModel(cfg ImportConfig) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	labels := [fieldCount]string{"datetime override", "jobcode", "base directory", "subdirectory pattern", "filename pattern"}
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 200
		in.Width = 40
		inputs[i] = in
	}
	inputs[fieldDatetime].Placeholder = "YYYY-MM-DD[THH:MM:SS]"

	m := Model{
		config:   cfg,
		Phase:    PhaseBrowse,
		dir:      cfg.StartDir,
		selected: make(map[string]bool),
		filters:  domain.BuiltinFilters(),
		inputs:   inputs,
		focus:    -1,
		preview:  app.Preview{ImageID: -1},
		spinner:  s,
		width:    80,
		height:   24,
	}

	// The dialog opens on the raw filter.
	for i, f := range m.filters {
		if f.Name == domain.FilterRawOnly.Name {
			m.filterIdx = i
		}
	}

	if cfg.Conf != nil {
		// Restored geometry holds until the first WindowSizeMsg.
		if w := cfg.Conf.GetInt(app.ConfDialogWidth); w > 0 {
			m.width = w
		}
		if h := cfg.Conf.GetInt(app.ConfDialogHeight); h > 0 {
			m.height = h
		}
		m.duplicate = cfg.Conf.GetBool(app.ConfImportCopy)
		m.inputs[fieldJobcode].SetValue(cfg.Conf.GetString(app.ConfJobcode))
		m.inputs[fieldBase].SetValue(cfg.Conf.GetString(app.ConfBasePattern))
		m.inputs[fieldSubdir].SetValue(cfg.Conf.GetString(app.ConfSubdirPattern))
		m.inputs[fieldFilename].SetValue(cfg.Conf.GetString(app.ConfFilePattern))
		if last := cfg.Conf.GetString(app.ConfLastDirectory); last != "" {
			if info, err := os.Stat(last); err == nil && info.IsDir() {
				m.dir = last
			}
		}
	}

	m.loadEntries()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.previewCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.config.Conf != nil {
			m.config.Conf.SetInt(app.ConfDialogWidth, msg.Width)
			m.config.Conf.SetInt(app.ConfDialogHeight, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.Phase == PhaseImporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case PreviewMsg:
		// Ignore previews that raced a cursor move.
		if msg.Path == m.previewPath() {
			m.preview = msg.Preview
		}
		return m, nil

	case ImportDoneMsg:
		m.Phase = PhaseDone
		m.Request = msg.Request
		m.Result = msg.Result
		return m, tea.Quit

	case ErrorMsg:
		// Validation failures keep the dialog open; anything else ends it.
		if apperrors.Is(msg.Err, apperrors.InvalidDatetime) || apperrors.Is(msg.Err, apperrors.EmptySelection) {
			m.Phase = PhaseBrowse
			m.Err = msg.Err
			return m, nil
		}
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Phase != PhaseBrowse {
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.focus >= 0 {
		return m.updateFieldKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.Quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, m.previewCmd()

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, m.previewCmd()

	case "enter", "right", "l":
		if e, ok := m.current(); ok {
			if e.isDir {
				m.dir = e.path
				m.cursor = 0
				m.loadEntries()
				return m, m.previewCmd()
			}
			m.toggle(e.path)
		}
		return m, nil

	case "backspace", "left", "h":
		parent := filepath.Dir(m.dir)
		if parent != m.dir {
			m.dir = parent
			m.cursor = 0
			m.loadEntries()
		}
		return m, m.previewCmd()

	case " ":
		if e, ok := m.current(); ok && !e.isDir {
			m.toggle(e.path)
		}
		return m, nil

	case "a":
		// Select the directory itself; traversal expands it recursively.
		m.toggle(m.dir)
		return m, nil

	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(m.filters)
		m.cursor = 0
		m.loadEntries()
		return m, m.previewCmd()

	case "d":
		m.duplicate = !m.duplicate
		return m, nil

	case "tab":
		m.setFocus(0)
		return m, textinput.Blink

	case "i":
		m.Err = nil
		m.Phase = PhaseImporting
		return m, tea.Batch(m.spinner.Tick, m.importCmd())
	}

	return m, nil
}

func (m Model) updateFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit

	case "esc", "enter":
		m.setFocus(-1)
		return m, nil

	case "tab":
		next := m.focus + 1
		if next >= fieldCount {
			next = -1
		}
		m.setFocus(next)
		return m, textinput.Blink

	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldDatetime {
		_, err := domain.EntryToExif(m.inputs[fieldDatetime].Value())
		m.datetimeInvalid = err != nil
	}
	return m, cmd
}

func (m *Model) setFocus(field int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	if field >= 0 {
		m.inputs[field].Focus()
	}
}

func (m *Model) toggle(path string) {
	if m.selected[path] {
		delete(m.selected, path)
		return
	}
	m.selected[path] = true
}

func (m Model) current() (dirEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return dirEntry{}, false
	}
	return m.entries[m.cursor], true
}

func (m Model) previewPath() string {
	if e, ok := m.current(); ok && !e.isDir {
		return e.path
	}
	return ""
}

// loadEntries lists the current directory: subdirectories first, then the
// files the active filter admits, each block alphabetical.
func (m *Model) loadEntries() {
	m.entries = nil
	listing, err := os.ReadDir(m.dir)
	if err != nil {
		return
	}
	filter := m.filters[m.filterIdx]
	var dirs, files []dirEntry
	for _, item := range listing {
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		e := dirEntry{name: item.Name(), path: filepath.Join(m.dir, item.Name()), isDir: item.IsDir()}
		if e.isDir {
			dirs = append(dirs, e)
		} else if filter.Matches(e.name) {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	m.entries = append(dirs, files...)
}

func (m Model) previewCmd() tea.Cmd {
	path := m.previewPath()
	if path == "" {
		return func() tea.Msg { return PreviewMsg{Path: "", Preview: app.Preview{ImageID: -1}} }
	}
	previewer := m.config.Previewer
	return func() tea.Msg {
		return PreviewMsg{Path: path, Preview: previewer.Refresh(path)}
	}
}

func (m Model) importCmd() tea.Cmd {
	cfg := m.config
	filter := m.filters[m.filterIdx]
	selection := make([]string, 0, len(m.selected))
	for path := range m.selected {
		selection = append(selection, path)
	}
	sort.Strings(selection)

	state := app.DialogState{
		Duplicate:       m.duplicate,
		DatetimeRaw:     m.inputs[fieldDatetime].Value(),
		Jobcode:         m.inputs[fieldJobcode].Value(),
		BaseDirectory:   m.inputs[fieldBase].Value(),
		SubdirPattern:   m.inputs[fieldSubdir].Value(),
		FilenamePattern: m.inputs[fieldFilename].Value(),
		LastDirectory:   m.dir,
	}

	return func() tea.Msg {
		state.Items = cfg.Traverser.Expand(selection, filter)
		req, err := cfg.Builder.Build(state)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if cfg.Conf != nil {
			cfg.Conf.SetString(app.ConfLastDirectory, state.LastDirectory)
			cfg.Conf.SetBool(app.ConfImportCopy, state.Duplicate)
			cfg.Conf.SetString(app.ConfJobcode, state.Jobcode)
			cfg.Conf.SetString(app.ConfBasePattern, state.BaseDirectory)
			cfg.Conf.SetString(app.ConfSubdirPattern, state.SubdirPattern)
			cfg.Conf.SetString(app.ConfFilePattern, state.FilenamePattern)
		}
		res, err := cfg.Builder.Dispatch(context.Background(), req)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ImportDoneMsg{Request: req, Result: res}
	}
}

func (m Model) View() string {
	if m.Quitting && m.Phase == PhaseBrowse {
		return ""
	}

	switch m.Phase {
	case PhaseImporting:
		return fmt.Sprintf("\n %s importing %d entries...\n", m.spinner.View(), len(m.selected))
	case PhaseDone:
		return m.viewDone()
	case PhaseError:
		return errorStyle.Render(fmt.Sprintf("%s %s", iconError, apperrors.UserMessage(m.Err))) + "\n"
	}

	left := m.viewBrowser()
	right := lipgloss.JoinVertical(lipgloss.Left, m.viewPreview(), m.viewForm())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := titleStyle.Render("filmroll import") + "\n" +
		subtitleStyle.Render(fmt.Sprintf("%s %s  %s filter: %s", iconFolder, m.dir, iconArrow, m.filters[m.filterIdx].Name))

	footer := helpStyle.Render("↑/↓ move · enter open/select · space select · a select folder · f filter · d copy mode · tab fields · i import · q quit")
	if m.Err != nil {
		footer = errorStyle.Render(apperrors.UserMessage(m.Err)) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) viewBrowser() string {
	var b strings.Builder
	for i, e := range m.entries {
		mark := "  "
		if m.selected[e.path] {
			mark = selectedStyle.Render(iconSelected) + " "
		}
		name := e.name
		var line string
		switch {
		case e.isDir:
			line = dirStyle.Render(name + "/")
		case domain.FilterRawOnly.Matches(name):
			line = rawFileStyle.Render(iconRAW+" ") + fileNameStyle.Render(name)
		default:
			line = rasterFileStyle.Render(iconRaster+" ") + fileNameStyle.Render(name)
		}
		if i == m.cursor && m.focus < 0 {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(mark + line + "\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(subtitleStyle.Render("(empty)") + "\n")
	}
	style := boxStyle
	if m.focus < 0 {
		style = highlightBoxStyle
	}
	return style.Width(m.width/2 - 4).Render(b.String())
}

func (m Model) viewPreview() string {
	var b strings.Builder
	if m.preview.Path == "" {
		b.WriteString(subtitleStyle.Render("no preview"))
	} else {
		b.WriteString(pathStyle.Render(filepath.Base(m.preview.Path)))
		if m.preview.InLibrary {
			b.WriteString(" " + selectedStyle.Render(iconLibrary+" in library"))
		}
		b.WriteString("\n")
		b.WriteString(renderExif(m.preview.Exif))
	}
	return boxStyle.Width(m.width/2 - 4).Render(b.String())
}

func renderExif(rec domain.ExifRecord) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(statLabelStyle.Render(label) + statValueStyle.Render(value) + "\n")
	}
	row("taken", rec.Datetime)
	row("camera", strings.TrimSpace(rec.Maker+" "+rec.Model))
	row("lens", rec.Lens)
	if rec.FocalLength > 0 {
		row("focal", fmt.Sprintf("%.0f mm", rec.FocalLength))
	}
	if rec.Aperture > 0 {
		row("aperture", fmt.Sprintf("f/%.1f", rec.Aperture))
	}
	if rec.ISO > 0 {
		row("iso", fmt.Sprintf("%.0f", rec.ISO))
	}
	row("exposure", rec.Exposure)
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	mode := "add to library in place"
	if m.duplicate {
		mode = "copy & import"
	}
	b.WriteString(statLabelStyle.Render("mode") + statValueStyle.Render(mode) + "\n")
	b.WriteString(statLabelStyle.Render("selected") + statValueStyle.Render(fmt.Sprintf("%d", len(m.selected))) + "\n")

	labels := [fieldCount]string{"datetime", "jobcode", "base dir", "subdir", "filename"}
	for i, in := range m.inputs {
		if !m.duplicate && i != fieldJobcode {
			continue
		}
		line := statLabelStyle.Render(labels[i]) + in.View()
		if i == fieldDatetime && m.datetimeInvalid {
			line += " " + errorStyle.Render(iconError)
		}
		b.WriteString(line + "\n")
	}

	if m.duplicate {
		if target := m.patternPreview(); target != "" {
			b.WriteString(statLabelStyle.Render("result") + pathStyle.Render(target) + "\n")
		}
	}

	style := boxStyle
	if m.focus >= 0 {
		style = highlightBoxStyle
	}
	return style.Width(m.width/2 - 4).Render(b.String())
}

// patternPreview shows where the first selected file would land. It is
// illustrative: the import job owns the real expansion, with EXIF times and
// collision handling.
func (m Model) patternPreview() string {
	var sample string
	for path := range m.selected {
		if sample == "" || path < sample {
			sample = path
		}
	}
	if sample == "" {
		sample = m.previewPath()
	}
	if sample == "" {
		return ""
	}

	now := time.Now()
	base := filepath.Base(sample)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	vars := map[string]string{
		"YEAR":           now.Format("2006"),
		"MONTH":          now.Format("01"),
		"DAY":            now.Format("02"),
		"HOUR":           now.Format("15"),
		"MINUTE":         now.Format("04"),
		"SECOND":         now.Format("05"),
		"JOBCODE":        m.inputs[fieldJobcode].Value(),
		"FILE_NAME":      strings.TrimSuffix(base, filepath.Ext(base)),
		"FILE_EXTENSION": ext,
		"SEQUENCE":       "0001",
	}
	subdir := pattern.Expand(m.inputs[fieldSubdir].Value(), vars)
	name := pattern.Expand(m.inputs[fieldFilename].Value(), vars)
	return filepath.Join(m.inputs[fieldBase].Value(), subdir, name)
}

func (m Model) viewDone() string {
	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("%s imported %d files", iconSelected, m.Result.Imported)) + "\n")
	if m.Request.Duplicate && m.Result.FilmrollDir != "" {
		b.WriteString(pathStyle.Render(fmt.Sprintf("%s %s", iconArrow, m.Result.FilmrollDir)) + "\n")
	}
	return b.String()
}
