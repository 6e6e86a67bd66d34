// Package modulegroups decides which darkroom modules are visible for a
// given group tab and search text, and keeps tab cycling bounded.
package modulegroups

// Group is one of the fixed categories partitioning the darkroom modules.
// The ordinals set the tab order and must not change.
type Group int

const (
	GroupActivePipe Group = 0 // only modules currently enabled
	GroupTones      Group = 1
	GroupFilm       Group = 2
	GroupColor      Group = 3
	GroupRepair     Group = 4
	GroupSharpness  Group = 5
	GroupEffects    Group = 6
	GroupTechnical  Group = 7
	GroupNone       Group = 8 // show all

	// GroupCount is one past the last valid group.
	GroupCount = 9
)

var groupLabels = [GroupCount]string{
	"Pipeline", "Tones", "Film", "Color", "Repair", "Sharpness", "Effects", "Technics", "All",
}

func (g Group) Label() string {
	if g < 0 || g >= GroupCount {
		return ""
	}
	return groupLabels[g]
}

// Global reports whether g is one of the special groups that cut across
// module categories: the active pipeline and "all".
func (g Group) Global() bool {
	return g == GroupActivePipe || g == GroupNone
}

// CycleTabs maps a signed tab request to a valid group with wrap-around.
// Used by the next/previous keyboard actions, which wrap immediately.
func CycleTabs(requested int) Group {
	switch {
	case requested < 0:
		return GroupCount - 1
	case requested >= GroupCount:
		return 0
	default:
		return Group(requested)
	}
}

// DefaultScrollWrapThreshold is how many consecutive same-direction wheel
// events it takes to cross a tab-bar boundary.
const DefaultScrollWrapThreshold = 5

// ScrollAccumulator turns wheel events over the tab bar into group changes.
// In-range moves apply immediately; crossing the boundary needs Threshold
// consecutive scrolls in the same direction, so an overshoot does not wrap
// by accident.
type ScrollAccumulator struct {
	// Threshold overrides DefaultScrollWrapThreshold when positive.
	Threshold int

	count   int
	lastDir int
}

// Scroll applies one wheel event (delta > 0 scrolls forward) to the current
// group and returns the new group plus whether it changed.
func (a *ScrollAccumulator) Scroll(current Group, delta int) (Group, bool) {
	if delta == 0 {
		return current, false
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	if dir != a.lastDir {
		a.count = 0
		a.lastDir = dir
	}

	future := int(current) + dir
	if future >= 0 && future < GroupCount {
		a.count = 0
		return Group(future), true
	}

	threshold := a.Threshold
	if threshold <= 0 {
		threshold = DefaultScrollWrapThreshold
	}
	a.count++
	if a.count < threshold {
		return current, false
	}
	a.count = 0
	return CycleTabs(future), true
}
