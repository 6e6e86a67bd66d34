package tui

import (
	"testing"

	"filmroll/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

type stubConf struct {
	strings map[string]string
	ints    map[string]int
	bools   map[string]bool
}

func newStubConf() *stubConf {
	return &stubConf{
		strings: map[string]string{},
		ints:    map[string]int{},
		bools:   map[string]bool{},
	}
}

func (c *stubConf) GetString(key string) string    { return c.strings[key] }
func (c *stubConf) SetString(key, value string)    { c.strings[key] = value }
func (c *stubConf) GetInt(key string) int          { return c.ints[key] }
func (c *stubConf) SetInt(key string, value int)   { c.ints[key] = value }
func (c *stubConf) GetBool(key string) bool        { return c.bools[key] }
func (c *stubConf) SetBool(key string, value bool) { c.bools[key] = value }

func TestNewModelRestoresDialogStateFromConf(t *testing.T) {
	conf := newStubConf()
	conf.ints[app.ConfDialogWidth] = 132
	conf.ints[app.ConfDialogHeight] = 43
	conf.bools[app.ConfImportCopy] = true
	conf.strings[app.ConfJobcode] = "shoot"
	conf.strings[app.ConfSubdirPattern] = "$(YEAR)"

	m := NewModel(ImportConfig{StartDir: t.TempDir(), Conf: conf})
	if m.width != 132 || m.height != 43 {
		t.Fatalf("geometry = %dx%d, want 132x43", m.width, m.height)
	}
	if !m.duplicate {
		t.Fatal("copy mode not restored")
	}
	if m.inputs[fieldJobcode].Value() != "shoot" {
		t.Fatalf("jobcode = %q", m.inputs[fieldJobcode].Value())
	}
	if m.inputs[fieldSubdir].Value() != "$(YEAR)" {
		t.Fatalf("subdir pattern = %q", m.inputs[fieldSubdir].Value())
	}
}

func TestNewModelDefaultGeometryWithoutConf(t *testing.T) {
	m := NewModel(ImportConfig{StartDir: t.TempDir()})
	if m.width != 80 || m.height != 24 {
		t.Fatalf("geometry = %dx%d, want 80x24", m.width, m.height)
	}
}

func TestResizePersistsGeometry(t *testing.T) {
	conf := newStubConf()
	m := NewModel(ImportConfig{StartDir: t.TempDir(), Conf: conf})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if m.width != 100 || m.height != 30 {
		t.Fatalf("geometry = %dx%d, want 100x30", m.width, m.height)
	}
	if conf.ints[app.ConfDialogWidth] != 100 || conf.ints[app.ConfDialogHeight] != 30 {
		t.Fatalf("geometry not written back: %v", conf.ints)
	}
}
