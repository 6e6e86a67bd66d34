package modulegroups

import (
	"strings"
	"testing"
)

type mockDevelop struct {
	focusedOp       string
	released        []any
	multiShowCalled int
}

func (m *mockDevelop) FocusedOp() string { return m.focusedOp }
func (m *mockDevelop) ReleaseFocus(handle any) {
	m.released = append(m.released, handle)
}
func (m *mockDevelop) UpdateMultiShow() { m.multiShowCalled++ }

func testModules() []Module {
	return []Module{
		{Op: "exposure", Name: "exposure", DefaultGroup: GroupTones, Enabled: true},
		{Op: "filmic", Name: "filmic rgb", Aliases: []string{"tone mapping"}, DefaultGroup: GroupTones},
		{Op: "colorbalance", Name: "color balance", Aliases: []string{"grading"}, DefaultGroup: GroupColor},
		{Op: "sharpen", Name: "sharpen", Aliases: []string{"sharpness", "unsharp mask"}, DefaultGroup: GroupSharpness},
		{Op: "legacytonemap", Name: "legacy tonemap", DefaultGroup: GroupTones, Deprecated: true},
		{Op: "rawprepare", Name: "raw black/white point", DefaultGroup: GroupTechnical, Hidden: true, Enabled: true},
	}
}

func TestActivePipeShowsOnlyEnabled(t *testing.T) {
	dev := &mockDevelop{}
	engine := &Engine{Develop: dev}
	modules := testModules()
	vis := engine.Recompute(GroupActivePipe, "", modules)

	for i, m := range modules {
		if m.Hidden {
			if !vis[i].Skipped {
				t.Errorf("%s: hidden module should be skipped", m.Op)
			}
			continue
		}
		if vis[i].Shown != m.Enabled {
			t.Errorf("%s: shown=%v, want enabled=%v", m.Op, vis[i].Shown, m.Enabled)
		}
	}
	if dev.multiShowCalled != 1 {
		t.Errorf("expected one multi-show refresh, got %d", dev.multiShowCalled)
	}
}

func TestGroupNoneHidesDeprecatedUnlessEnabled(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	vis := engine.Recompute(GroupNone, "", modules)

	byOp := make(map[string]Visibility)
	for i, m := range modules {
		byOp[m.Op] = vis[i]
	}
	if !byOp["exposure"].Shown || !byOp["filmic"].Shown || !byOp["colorbalance"].Shown {
		t.Error("regular modules should all be shown in the All group")
	}
	if byOp["legacytonemap"].Shown {
		t.Error("deprecated disabled module should be hidden in the All group")
	}

	modules[4].Enabled = true
	vis = engine.Recompute(GroupNone, "", modules)
	if !vis[4].Shown {
		t.Error("deprecated module should be shown once enabled")
	}
}

func TestSpecificGroupFiltersByMembership(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	vis := engine.Recompute(GroupTones, "", modules)

	if !vis[0].Shown || !vis[1].Shown {
		t.Error("tones modules should be shown in the Tones group")
	}
	if vis[2].Shown || vis[3].Shown {
		t.Error("modules of other groups should be hidden")
	}
	if vis[4].Shown {
		t.Error("deprecated disabled module should stay hidden in its own group")
	}
}

func TestSearchOverridesGroup(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	// Group is Color, but the search should surface the sharpen module
	// through its "sharpness" alias.
	vis := engine.Recompute(GroupColor, "sharp", modules)

	if !vis[3].Shown {
		t.Error("alias match should be shown regardless of the current group")
	}
	if vis[2].Shown {
		t.Error("non-matching module should be hidden during search")
	}
}

func TestSearchHidesDeprecatedDespiteNameMatch(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	vis := engine.Recompute(GroupNone, "legacy", modules)
	if vis[4].Shown {
		t.Error("deprecated disabled module should be hidden even when its name matches")
	}

	modules[4].Enabled = true
	vis = engine.Recompute(GroupNone, "legacy", modules)
	if !vis[4].Shown {
		t.Error("enabled deprecated module should match the search")
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	for _, needle := range []string{"FILMIC", "filmic", "FiLmIc", strings.ToUpper("tone MAPPING")} {
		vis := engine.Recompute(GroupNone, needle, modules)
		if !vis[1].Shown {
			t.Errorf("search %q should match the filmic module", needle)
		}
	}
}

func TestHiddenModuleNeverToggled(t *testing.T) {
	engine := &Engine{Develop: &mockDevelop{}}
	modules := testModules()
	for _, group := range []Group{GroupActivePipe, GroupNone, GroupTechnical} {
		for _, search := range []string{"", "raw"} {
			vis := engine.Recompute(group, search, modules)
			if !vis[5].Skipped || vis[5].Shown {
				t.Errorf("hidden module toggled for group=%v search=%q", group, search)
			}
		}
	}
}

func TestFocusReleasedWhenFocusedModuleHides(t *testing.T) {
	handle := &struct{ name string }{"expander"}
	dev := &mockDevelop{focusedOp: "colorbalance"}
	engine := &Engine{Develop: dev}
	modules := testModules()
	modules[2].Handle = handle

	vis := engine.Recompute(GroupTones, "", modules)
	if !vis[2].FocusLost {
		t.Error("focused module that hides should report focus loss")
	}
	if len(dev.released) != 1 || dev.released[0] != handle {
		t.Errorf("expected focus release with the opaque handle, got %v", dev.released)
	}

	// Same module shown: no release.
	dev.released = nil
	vis = engine.Recompute(GroupColor, "", modules)
	if vis[2].FocusLost || len(dev.released) != 0 {
		t.Error("no focus release expected while the focused module stays visible")
	}
}

func TestSearchActive(t *testing.T) {
	if SearchActive("") {
		t.Error("empty text means no search")
	}
	if !SearchActive("x") {
		t.Error("non-empty text means search is active")
	}
}
