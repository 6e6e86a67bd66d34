package modulegroups

// Module is the read-only view of one darkroom module the engine works on.
// The develop pipeline owns the records; the engine never mutates them.
type Module struct {
	Op           string // stable identifier
	Name         string // localized display name
	Aliases      []string
	DefaultGroup Group
	Enabled      bool
	Deprecated   bool
	Hidden       bool // has no GUI; the engine never touches it

	// Handle is an opaque reference to the module's expander widget,
	// passed back on focus release without being dereferenced here.
	Handle any
}

// Visibility is the per-module outcome of a recomputation.
type Visibility struct {
	// Skipped is set for hidden (GUI-less) modules: neither shown nor
	// hidden, the widget stays untouched.
	Skipped bool
	Shown   bool
	// FocusLost is set when this module held focus and just became hidden.
	FocusLost bool
}

// Develop is the collaborator owning the module list and the focus state.
type Develop interface {
	// FocusedOp returns the op of the focused module, or "" if none.
	FocusedOp() string
	// ReleaseFocus drops focus from the module owning handle.
	ReleaseFocus(handle any)
	// UpdateMultiShow refreshes the multi-instance show flags after a
	// full visibility pass.
	UpdateMultiShow()
}

// Engine recomputes module visibility from the current group tab and search
// text. It is a synchronous pure recomputation apart from the focus-release
// and multi-show notifications to Develop; callers on other threads must
// marshal onto the UI thread before entering.
type Engine struct {
	Develop Develop
}

// Recompute yields one Visibility per module, in input order, applying the
// decision rules in priority order: hidden modules are skipped, an active
// search overrides the group, then the group itself decides.
func (e *Engine) Recompute(current Group, search string, modules []Module) []Visibility {
	out := make([]Visibility, len(modules))
	focused := ""
	if e.Develop != nil {
		focused = e.Develop.FocusedOp()
	}

	for i, m := range modules {
		if m.Hidden {
			out[i] = Visibility{Skipped: true}
			continue
		}

		shown := false
		switch {
		case SearchActive(search):
			// Deprecated modules stay buried during search unless the
			// user enabled them already.
			if m.Deprecated && !m.Enabled {
				shown = false
			} else {
				shown = searchMatches(search, m)
			}
		case current == GroupActivePipe:
			shown = m.Enabled
		case current == GroupNone:
			shown = !m.Deprecated || m.Enabled
		default:
			shown = m.DefaultGroup == current && (!m.Deprecated || m.Enabled)
		}

		v := Visibility{Shown: shown}
		if !shown && focused != "" && m.Op == focused {
			v.FocusLost = true
			if e.Develop != nil {
				e.Develop.ReleaseFocus(m.Handle)
			}
		}
		out[i] = v
	}

	if e.Develop != nil {
		e.Develop.UpdateMultiShow()
	}
	return out
}
