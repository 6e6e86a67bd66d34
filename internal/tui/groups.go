package tui

import (
	"fmt"
	"strings"

	"filmroll/internal/modulegroups"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GroupsModel is the module-groups panel: a tab bar over the group
// categories, a search box that overrides it, and the module list the
// visibility engine computes from both.
type GroupsModel struct {
	dev     *sessionDevelop
	engine  modulegroups.Engine
	current modulegroups.Group
	wheel   modulegroups.ScrollAccumulator
	search  textinput.Model

	// visible holds indexes into dev.modules, in list order.
	visible []int
	cursor  int

	Quitting bool
	width    int
	height   int
}

func NewGroupsModel() GroupsModel {
	dev := newSessionDevelop()
	search := textinput.New()
	search.Placeholder = "search modules"
	search.Prompt = "/ "
	search.CharLimit = 60
	search.Width = 30

	m := GroupsModel{
		dev:     dev,
		engine:  modulegroups.Engine{Develop: dev},
		current: modulegroups.GroupActivePipe,
		search:  search,
		width:   80,
		height:  24,
	}
	m.recompute()
	return m
}

func (m GroupsModel) Init() tea.Cmd {
	return nil
}

// recompute runs the visibility engine and rebuilds the shown list, keeping
// the cursor on a valid row.
func (m *GroupsModel) recompute() {
	vis := m.engine.Recompute(m.current, m.search.Value(), m.dev.modules)
	m.visible = m.visible[:0]
	for i, v := range vis {
		if v.Shown {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m GroupsModel) searchActive() bool {
	return modulegroups.SearchActive(m.search.Value())
}

func (m GroupsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		// The wheel drives the tab bar, but an active search pins it.
		if m.searchActive() {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if next, changed := m.wheel.Scroll(m.current, -1); changed {
				m.current = next
				m.recompute()
			}
		case tea.MouseButtonWheelDown:
			if next, changed := m.wheel.Scroll(m.current, 1); changed {
				m.current = next
				m.recompute()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m GroupsModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.recompute()
			return m, nil
		case "enter":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.recompute()
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.recompute()
			return m, nil
		}
		m.Quitting = true
		return m, tea.Quit

	case "tab", "right":
		if m.searchActive() {
			return m, nil
		}
		m.current = modulegroups.CycleTabs(int(m.current) + 1)
		m.recompute()
		return m, nil

	case "shift+tab", "left":
		if m.searchActive() {
			return m, nil
		}
		m.current = modulegroups.CycleTabs(int(m.current) - 1)
		m.recompute()
		return m, nil

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case " ", "enter":
		if mod, ok := m.cursorModule(); ok {
			m.dev.toggle(mod.Op)
			m.recompute()
		}
		return m, nil

	case "f":
		if mod, ok := m.cursorModule(); ok {
			m.dev.focus(mod.Op)
		}
		return m, nil
	}

	return m, nil
}

func (m GroupsModel) cursorModule() (modulegroups.Module, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return modulegroups.Module{}, false
	}
	return m.dev.modules[m.visible[m.cursor]], true
}

func (m GroupsModel) View() string {
	if m.Quitting {
		return ""
	}

	header := titleStyle.Render("darkroom modules")
	tabs := m.viewTabs()
	list := m.viewList()
	footer := helpStyle.Render("tab/shift+tab groups · wheel scroll · / search · space toggle · f focus · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, m.search.View(), list, footer)
}

func (m GroupsModel) viewTabs() string {
	disabled := m.searchActive()
	parts := make([]string, 0, modulegroups.GroupCount)
	for g := modulegroups.Group(0); g < modulegroups.GroupCount; g++ {
		style := inactiveTabStyle
		switch {
		case disabled:
			style = disabledTabStyle
		case g == m.current:
			style = activeTabStyle
		}
		parts = append(parts, style.Render(g.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m GroupsModel) viewList() string {
	var b strings.Builder
	for row, idx := range m.visible {
		mod := m.dev.modules[idx]
		state := moduleOffStyle
		mark := "○"
		if mod.Enabled {
			state = moduleOnStyle
			mark = "●"
		}
		name := mod.Name
		if mod.Op == m.dev.focusedOp {
			state = moduleFocusStyle
			name += " *"
		}
		line := fmt.Sprintf("%s %s", mark, name)
		if row == m.cursor {
			line = cursorStyle.Render("> ") + state.Render(line)
		} else {
			line = "  " + state.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(subtitleStyle.Render("no modules match") + "\n")
	}
	return boxStyle.Width(min(m.width-4, 60)).Render(b.String())
}
